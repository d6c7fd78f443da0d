package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

const collectionPrices = "prices"

type PriceRepository struct {
	col *mongo.Collection
}

func NewPriceRepository(db *mongo.Database) *PriceRepository {
	return &PriceRepository{col: db.Collection(collectionPrices)}
}

// priceDoc stores the display category alongside its lowercased key; the
// unique index on (managed_by, category_key) enforces one rate per
// category per owner regardless of case.
type priceDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Category    string             `bson:"category"`
	CategoryKey string             `bson:"category_key"`
	Rate        string             `bson:"rate"`
	ManagedBy   string             `bson:"managed_by"`
}

func (d *priceDoc) toDomain() (*domain.Price, error) {
	rate, err := decimal.NewFromString(d.Rate)
	if err != nil {
		return nil, fmt.Errorf("decode rate %q: %w", d.Rate, err)
	}
	return &domain.Price{
		ID:        d.ID.Hex(),
		Category:  d.Category,
		Rate:      rate,
		ManagedBy: d.ManagedBy,
	}, nil
}

func (r *PriceRepository) Create(ctx context.Context, p *domain.Price) (*domain.Price, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := priceDoc{
		Category:    p.Category,
		CategoryKey: p.CategoryKey(),
		Rate:        p.Rate.StringFixed(2),
		ManagedBy:   p.ManagedBy,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateCategory
		}
		return nil, fmt.Errorf("insert price: %w", err)
	}

	created := *p
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *PriceRepository) FindByID(ctx context.Context, id string) (*domain.Price, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPriceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc priceDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPriceNotFound
		}
		return nil, fmt.Errorf("find price: %w", err)
	}
	return doc.toDomain()
}

func (r *PriceRepository) List(ctx context.Context, scope domain.Scope) ([]*domain.Price, error) {
	var filter bson.M
	switch scope.Mode {
	case domain.ScopeAll:
		filter = bson.M{}
	case domain.ScopeOwned:
		filter = bson.M{"managed_by": scope.OwnerID}
	default:
		return []*domain.Price{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "category_key", Value: 1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer cursor.Close(ctx)

	var prices []*domain.Price
	for cursor.Next(ctx) {
		var doc priceDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode price: %w", err)
		}
		price, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		prices = append(prices, price)
	}
	return prices, cursor.Err()
}

func (r *PriceRepository) Update(ctx context.Context, p *domain.Price) error {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return domain.ErrPriceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"category":     p.Category,
		"category_key": p.CategoryKey(),
		"rate":         p.Rate.StringFixed(2),
	}}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateCategory
		}
		return fmt.Errorf("update price: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPriceNotFound
	}
	return nil
}

func (r *PriceRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPriceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete price: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPriceNotFound
	}
	return nil
}

// EnsureIndexes creates the uniqueness guarantee for (owner, category).
func (r *PriceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "managed_by", Value: 1}, {Key: "category_key", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
