package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodconnect/donor-match-api/internal/core/domain"
)

const donorsCollection = "donors"

// DonorRepository implements ports.DonorRepository using MongoDB.
type DonorRepository struct {
	col *mongo.Collection
}

func NewDonorRepository(db *mongo.Database) *DonorRepository {
	return &DonorRepository{col: db.Collection(donorsCollection)}
}

type donorDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Phone      string             `bson:"phone"`
	BloodGroup string             `bson:"bloodGroup"`
	Location   string             `bson:"location"`
	Password   string             `bson:"password,omitempty"`
}

func (d donorDocument) toDomain() domain.Donor {
	return domain.Donor{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		Phone:        d.Phone,
		BloodGroup:   d.BloodGroup,
		Location:     d.Location,
		PasswordHash: d.Password,
	}
}

// Create inserts a new donor document. The unique email index decides duplicates.
func (r *DonorRepository) Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := donorDocument{
		Name:       donor.Name,
		Email:      donor.Email,
		Phone:      donor.Phone,
		BloodGroup: donor.BloodGroup,
		Location:   donor.Location,
		Password:   donor.PasswordHash,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDonorExists
		}
		return nil, fmt.Errorf("insert donor: %w", err)
	}

	created := *donor
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

// FindByEmail returns the donor including its password hash, for login.
func (r *DonorRepository) FindByEmail(ctx context.Context, email string) (*domain.Donor, error) {
	return r.findOne(ctx, bson.M{"email": email}, options.FindOne())
}

// FindByID returns the donor without its password hash.
func (r *DonorRepository) FindByID(ctx context.Context, id string) (*domain.Donor, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDonorNotFound, err)
	}
	return r.findOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(withoutPassword))
}

// FindMatching returns donors with exactly this blood group and location.
func (r *DonorRepository) FindMatching(ctx context.Context, key domain.MatchKey) ([]domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"bloodGroup": key.BloodGroup, "location": key.Location}
	cur, err := r.col.Find(ctx, filter, options.Find().SetProjection(withoutPassword))
	if err != nil {
		return nil, fmt.Errorf("find donors: %w", err)
	}

	var docs []donorDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode donors: %w", err)
	}

	donors := make([]domain.Donor, 0, len(docs))
	for _, d := range docs {
		donors = append(donors, d.toDomain())
	}
	return donors, nil
}

func (r *DonorRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions) (*domain.Donor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc donorDocument
	if err := r.col.FindOne(ctx, filter, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, fmt.Errorf("find donor: %w", err)
	}
	donor := doc.toDomain()
	return &donor, nil
}
