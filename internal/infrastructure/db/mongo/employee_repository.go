package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/orgstack/employee-management/internal/core/domain"
)

const collectionEmployees = "employees"

type EmployeeRepository struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection(collectionEmployees)}
}

type mongoEmployee struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"first_name"`
	LastName     string             `bson:"last_name"`
	Email        string             `bson:"email"`
	PhoneNumber  string             `bson:"phone_number,omitempty"`
	HireDate     time.Time          `bson:"hire_date"`
	Salary       float64            `bson:"salary"`
	JobRole      string             `bson:"job_role"`
	DepartmentID string             `bson:"department_id"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (e mongoEmployee) toDomain() *domain.Employee {
	return &domain.Employee{
		ID:           e.ID.Hex(),
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
		HireDate:     e.HireDate,
		Salary:       e.Salary,
		JobRole:      e.JobRole,
		DepartmentID: e.DepartmentID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func fromDomainEmployee(e *domain.Employee) mongoEmployee {
	return mongoEmployee{
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
		HireDate:     e.HireDate,
		Salary:       e.Salary,
		JobRole:      e.JobRole,
		DepartmentID: e.DepartmentID,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// Insert persists a new employee. The unique index on email turns a racing
// duplicate into ErrEmployeeEmailTaken.
func (r *EmployeeRepository) Insert(ctx context.Context, emp *domain.Employee) (*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, fromDomainEmployee(emp))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmployeeEmailTaken
		}
		return nil, fmt.Errorf("insert employee: %w", err)
	}

	created := *emp
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEmployeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoEmployee
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]*domain.Employee, error) {
	return r.find(ctx, bson.M{}, nil)
}

// FindByDepartmentID returns the department's employees sorted by last name
// ascending, then first name ascending. The sort runs in the store so the
// tie-break is deterministic across pages and processes.
func (r *EmployeeRepository) FindByDepartmentID(ctx context.Context, departmentID string) ([]*domain.Employee, error) {
	sort := bson.D{{Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}
	return r.find(ctx, bson.M{"department_id": departmentID}, options.Find().SetSort(sort))
}

func (r *EmployeeRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer cur.Close(ctx)

	var emps []*domain.Employee
	for cur.Next(ctx) {
		var doc mongoEmployee
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode employee: %w", err)
		}
		emps = append(emps, doc.toDomain())
	}
	return emps, cur.Err()
}

func (r *EmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"email": email}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count employees by email: %w", err)
	}
	return n > 0, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	oid, err := primitive.ObjectIDFromHex(emp.ID)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"first_name":    emp.FirstName,
		"last_name":     emp.LastName,
		"email":         emp.Email,
		"phone_number":  emp.PhoneNumber,
		"hire_date":     emp.HireDate,
		"salary":        emp.Salary,
		"job_role":      emp.JobRole,
		"department_id": emp.DepartmentID,
		"updated_at":    emp.UpdatedAt,
	}}
	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrEmployeeEmailTaken
		}
		return fmt.Errorf("update employee: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrEmployeeNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// EnsureIndexes creates the unique email index plus the department_id index
// that serves ListByDepartment; department-to-employee lookups are computed
// through this index, never stored on the department.
func (r *EmployeeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "department_id", Value: 1}, {Key: "last_name", Value: 1}, {Key: "first_name", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
