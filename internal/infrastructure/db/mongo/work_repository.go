package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/studiobill/invoice-system/internal/core/domain"
)

const collectionWorkEntries = "work_entries"

// WorkEntryRepository persists work logs. It also reads the projects
// collection: the admin scope resolves through project ownership, which
// needs the owner's project ids.
type WorkEntryRepository struct {
	col      *mongo.Collection
	projects *mongo.Collection
}

func NewWorkEntryRepository(db *mongo.Database) *WorkEntryRepository {
	return &WorkEntryRepository{
		col:      db.Collection(collectionWorkEntries),
		projects: db.Collection(collectionProjects),
	}
}

type workEntryDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	ProjectID string             `bson:"project_id,omitempty"`
	Category  string             `bson:"category"`
	Quantity  int                `bson:"quantity"`
	Date      time.Time          `bson:"date"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *workEntryDoc) toDomain() *domain.WorkEntry {
	return &domain.WorkEntry{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		ProjectID: d.ProjectID,
		Category:  d.Category,
		Quantity:  d.Quantity,
		Date:      d.Date,
		CreatedAt: d.CreatedAt,
	}
}

func (r *WorkEntryRepository) Create(ctx context.Context, e *domain.WorkEntry) (*domain.WorkEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := workEntryDoc{
		UserID:    e.UserID,
		ProjectID: e.ProjectID,
		Category:  e.Category,
		Quantity:  e.Quantity,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert work entry: %w", err)
	}

	created := *e
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// List returns scoped entries newest first. The team-projects scope is
// resolved in two steps: collect the owner's project ids, then match
// entries against them.
func (r *WorkEntryRepository) List(ctx context.Context, scope domain.Scope) ([]*domain.WorkEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var filter bson.M
	switch scope.Mode {
	case domain.ScopeAll:
		filter = bson.M{}
	case domain.ScopeOwnEntries:
		filter = bson.M{"user_id": scope.UserID}
	case domain.ScopeTeamProjects:
		ids, err := r.projectIDsOwnedBy(ctx, scope.OwnerID)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []*domain.WorkEntry{}, nil
		}
		filter = bson.M{"project_id": bson.M{"$in": ids}}
	default:
		return []*domain.WorkEntry{}, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	return r.find(ctx, filter, opts)
}

// ListForProject returns a project's entries in ascending date order with
// creation-order tie-breaks, the sequence invoices are rendered in.
func (r *WorkEntryRepository) ListForProject(ctx context.Context, projectID string) ([]*domain.WorkEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})
	return r.find(ctx, bson.M{"project_id": projectID}, opts)
}

func (r *WorkEntryRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.WorkEntry, error) {
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list work entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []*domain.WorkEntry
	for cursor.Next(ctx) {
		var doc workEntryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode work entry: %w", err)
		}
		entries = append(entries, doc.toDomain())
	}
	return entries, cursor.Err()
}

func (r *WorkEntryRepository) projectIDsOwnedBy(ctx context.Context, ownerID string) ([]string, error) {
	cursor, err := r.projects.Find(ctx,
		bson.M{"managed_by": ownerID},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, fmt.Errorf("owned project ids: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode project id: %w", err)
		}
		ids = append(ids, doc.ID.Hex())
	}
	return ids, cursor.Err()
}

// EnsureIndexes creates the lookup indexes used by scoped reads.
func (r *WorkEntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "project_id", Value: 1}, {Key: "date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
