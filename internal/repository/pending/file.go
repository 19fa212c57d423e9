package pending

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/alarm-clock/internal/config"
	domain "github.com/oshokin/alarm-clock/internal/domain/alarm"
	pb "github.com/oshokin/alarm-clock/internal/pb/v1"
)

// Document is the persisted state of the notification store.
type Document struct {
	// Authorization is the notification permission.
	Authorization domain.AuthorizationState
	// Alarms are the pending definitions in submission order.
	Alarms []*domain.Definition
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}

	return &Document{
		Authorization: d.Authorization,
		Alarms:        domain.CloneAll(d.Alarms),
	}
}

// Repository defines persistence operations for the notification store.
type Repository interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
}

// FileRepository persists the document as protobuf JSON on disk, using the
// ListAlarmsResponse message so the file reads like a listing.
type FileRepository struct {
	// path is the filesystem location of the store file.
	path string
	// mu serializes access to the store file.
	mu sync.Mutex
}

// ErrNotFound is returned when the store file does not exist yet.
var ErrNotFound = errors.New("store not found")

// NewFileRepository creates a repository that reads and writes path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Load reads the document from disk.
func (r *FileRepository) Load(_ context.Context) (*Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("read store file: %w", err)
	}

	if len(contents) == 0 {
		return new(Document), nil
	}

	var listing pb.ListAlarmsResponse
	if err = protojson.Unmarshal(contents, &listing); err != nil {
		return nil, fmt.Errorf("decode store file: %w", err)
	}

	return fromProto(&listing)
}

// Save writes the document to a temporary file and renames it into place.
func (r *FileRepository) Save(_ context.Context, doc *Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	marshalOptions := protojson.MarshalOptions{
		Multiline:       true,
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(toProto(doc))
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(r.path), 0o750); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	tmp := r.path + ".tmp"
	if err = os.WriteFile(tmp, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}

	if err = os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}

	return nil
}

// toProto converts the document into its stored listing.
func toProto(doc *Document) *pb.ListAlarmsResponse {
	listing := &pb.ListAlarmsResponse{
		Alarms:        make([]*pb.Alarm, 0, len(doc.Alarms)),
		Authorization: doc.Authorization.String(),
	}

	for _, def := range doc.Alarms {
		var createdAt *timestamppb.Timestamp
		if !def.CreatedAt.IsZero() {
			createdAt = timestamppb.New(def.CreatedAt)
		}

		//nolint:gosec // Trigger fields are range checked by the domain.
		listing.Alarms = append(listing.Alarms, &pb.Alarm{
			Identifier: def.Identifier,
			Title:      def.Title,
			Body:       def.Body,
			Hour:       int32(def.Trigger.Hour),
			Minute:     int32(def.Trigger.Minute),
			Weekday:    int32(def.Trigger.Weekday),
			CreatedAt:  createdAt,
		})
	}

	return listing
}

// fromProto converts a stored listing back into the document.
func fromProto(listing *pb.ListAlarmsResponse) (*Document, error) {
	doc := new(Document)

	if err := doc.Authorization.UnmarshalText([]byte(listing.GetAuthorization())); err != nil {
		return nil, fmt.Errorf("decode store file: %w", err)
	}

	for _, alarm := range listing.GetAlarms() {
		var createdAt time.Time
		if ts := alarm.GetCreatedAt(); ts != nil {
			createdAt = ts.AsTime()
		}

		doc.Alarms = append(doc.Alarms, &domain.Definition{
			Identifier: alarm.GetIdentifier(),
			Title:      alarm.GetTitle(),
			Body:       alarm.GetBody(),
			Trigger: domain.Trigger{
				Hour:    int(alarm.GetHour()),
				Minute:  int(alarm.GetMinute()),
				Weekday: domain.Weekday(alarm.GetWeekday()),
			},
			CreatedAt: createdAt,
		})
	}

	return doc, nil
}
