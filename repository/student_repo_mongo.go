package repository

import (
	"context"
	"time"

	"kathasales/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoStudentRepo struct {
	DB *mongo.Client
}

func NewMongoStudentRepo(db *mongo.Client) *MongoStudentRepo {
	return &MongoStudentRepo{DB: db}
}

func (r *MongoStudentRepo) collection() *mongo.Collection {
	return r.DB.Database("kathasales").Collection("students")
}

func (r *MongoStudentRepo) CreateStudent(student *models.Student) error {
	ctx := context.Background()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now().UTC()
	}
	student.ID = primitive.NewObjectID().Hex()

	_, err := r.collection().InsertOne(ctx, student)
	return err
}

func (r *MongoStudentRepo) GetStudents() ([]*models.Student, error) {
	ctx := context.Background()
	cur, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var result []*models.Student
	for cur.Next(ctx) {
		var s models.Student
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		result = append(result, &s)
	}
	return result, cur.Err()
}

func (r *MongoStudentRepo) GetStudentByID(id string) (*models.Student, error) {
	ctx := context.Background()
	var s models.Student
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *MongoStudentRepo) UpdateStudent(student *models.Student) error {
	ctx := context.Background()
	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": student.ID},
		bson.M{"$set": bson.M{
			"name":       student.Name,
			"class":      student.Class,
			"section":    student.Section,
			"roll_no":    student.RollNo,
			"phone":      student.Phone,
			"fees_total": student.FeesTotal,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoStudentRepo) DeleteStudent(id string) error {
	ctx := context.Background()
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddFeePayment pushes the payment and bumps fees_paid in one update, so
// the total can never drift from the payment list.
func (r *MongoStudentRepo) AddFeePayment(id string, payment models.FeePayment) error {
	ctx := context.Background()
	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}
	res, err := r.collection().UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{
			"$push": bson.M{"payments": payment},
			"$inc":  bson.M{"fees_paid": payment.Amount},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
