package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fintrack/finance-tracker/internal/core/domain"
	"github.com/fintrack/finance-tracker/internal/core/ports"
)

const transactionCollection = "transactions"

// MongoTransactionRepository persists transactions. Every filter includes the
// owning user id, so a foreign id is indistinguishable from a missing one.
type MongoTransactionRepository struct {
	coll *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *MongoTransactionRepository {
	return &MongoTransactionRepository{coll: db.Collection(transactionCollection)}
}

type mongoTransaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        primitive.ObjectID `bson:"user_id"`
	Type          string             `bson:"type"`
	Amount        float64            `bson:"amount"`
	Category      string             `bson:"category"`
	Date          time.Time          `bson:"date"`
	Note          string             `bson:"note,omitempty"`
	PaymentMethod string             `bson:"payment_method"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (r *MongoTransactionRepository) Create(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	owner, err := primitive.ObjectIDFromHex(tx.UserID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	doc := mongoTransaction{
		ID:            primitive.NewObjectID(),
		UserID:        owner,
		Type:          string(tx.Type),
		Amount:        tx.Amount,
		Category:      tx.Category,
		Date:          tx.Date,
		Note:          tx.Note,
		PaymentMethod: string(tx.PaymentMethod),
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return doc.toDomain(), nil
}

// ListByUser returns the user's transactions sorted by date descending.
func (r *MongoTransactionRepository) ListByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.coll.Find(ctx, bson.M{"user_id": owner}, opts)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer cur.Close(ctx)

	out := []domain.Transaction{}
	for cur.Next(ctx) {
		var mt mongoTransaction
		if err := cur.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode transaction: %w", err)
		}
		out = append(out, *mt.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

func (r *MongoTransactionRepository) Update(ctx context.Context, userID, id string, upd ports.TransactionUpdate) (*domain.Transaction, error) {
	owner, oid, err := ownerAndID(userID, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Type != nil {
		set["type"] = string(*upd.Type)
	}
	if upd.Amount != nil {
		set["amount"] = *upd.Amount
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Date != nil {
		set["date"] = *upd.Date
	}
	if upd.Note != nil {
		set["note"] = *upd.Note
	}
	if upd.PaymentMethod != nil {
		set["payment_method"] = string(*upd.PaymentMethod)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mt mongoTransaction
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid, "user_id": owner}, bson.M{"$set": set}, opts).Decode(&mt)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *MongoTransactionRepository) Delete(ctx context.Context, userID, id string) error {
	owner, oid, err := ownerAndID(userID, id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": owner})
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

// AggregateMonth groups the user's transactions in [from, to) by type and
// category, summing amounts and counting records server-side.
func (r *MongoTransactionRepository) AggregateMonth(ctx context.Context, userID string, from, to time.Time) ([]ports.MonthBucket, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"user_id": owner,
			"date":    bson.M{"$gte": from, "$lt": to},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"type": "$type", "category": "$category"},
			"total": bson.M{"$sum": "$amount"},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate transactions: %w", err)
	}
	defer cur.Close(ctx)

	var buckets []ports.MonthBucket
	for cur.Next(ctx) {
		var row struct {
			ID struct {
				Type     string `bson:"type"`
				Category string `bson:"category"`
			} `bson:"_id"`
			Total float64 `bson:"total"`
			Count int     `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, fmt.Errorf("decode bucket: %w", err)
		}
		buckets = append(buckets, ports.MonthBucket{
			Type:     domain.TransactionType(row.ID.Type),
			Category: row.ID.Category,
			Total:    row.Total,
			Count:    row.Count,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate buckets: %w", err)
	}
	return buckets, nil
}

func ownerAndID(userID, id string) (primitive.ObjectID, primitive.ObjectID, error) {
	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, domain.ErrUserNotFound
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot match any document; treat it as not found.
		return primitive.NilObjectID, primitive.NilObjectID, domain.ErrTransactionNotFound
	}
	return owner, oid, nil
}

func (mt mongoTransaction) toDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:            mt.ID.Hex(),
		UserID:        mt.UserID.Hex(),
		Type:          domain.TransactionType(mt.Type),
		Amount:        mt.Amount,
		Category:      mt.Category,
		Date:          mt.Date.UTC(),
		Note:          mt.Note,
		PaymentMethod: domain.PaymentMethod(mt.PaymentMethod),
		CreatedAt:     mt.CreatedAt.UTC(),
		UpdatedAt:     mt.UpdatedAt.UTC(),
	}
}
