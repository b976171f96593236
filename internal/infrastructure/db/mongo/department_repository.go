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

const collectionDepartments = "departments"

type DepartmentRepository struct {
	col *mongo.Collection
}

func NewDepartmentRepository(db *mongo.Database) *DepartmentRepository {
	return &DepartmentRepository{col: db.Collection(collectionDepartments)}
}

type mongoDepartment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Location  string             `bson:"location,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d mongoDepartment) toDomain() *domain.Department {
	return &domain.Department{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Location:  d.Location,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Insert persists a new department. The unique index on name turns a racing
// duplicate into ErrDepartmentNameTaken.
func (r *DepartmentRepository) Insert(ctx context.Context, dept *domain.Department) (*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoDepartment{
		Name:      dept.Name,
		Location:  dept.Location,
		CreatedAt: dept.CreatedAt,
		UpdatedAt: dept.UpdatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDepartmentNameTaken
		}
		return nil, fmt.Errorf("insert department: %w", err)
	}

	created := *dept
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id string) (*domain.Department, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDepartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoDepartment
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *DepartmentRepository) FindAll(ctx context.Context) ([]*domain.Department, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer cur.Close(ctx)

	var depts []*domain.Department
	for cur.Next(ctx) {
		var doc mongoDepartment
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode department: %w", err)
		}
		depts = append(depts, doc.toDomain())
	}
	return depts, cur.Err()
}

func (r *DepartmentRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"name": name}, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count departments by name: %w", err)
	}
	return n > 0, nil
}

func (r *DepartmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	oid, err := primitive.ObjectIDFromHex(dept.ID)
	if err != nil {
		return domain.ErrDepartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       dept.Name,
		"location":   dept.Location,
		"updated_at": dept.UpdatedAt,
	}}
	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDepartmentNameTaken
		}
		return fmt.Errorf("update department: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

func (r *DepartmentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrDepartmentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrDepartmentNotFound
	}
	return nil
}

// EnsureIndexes creates the unique index backing the name-uniqueness rule.
func (r *DepartmentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
