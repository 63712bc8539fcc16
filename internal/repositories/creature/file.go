package creature

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/tamagotchi-api/internal/entities/tamagotchi"
	"github.com/KirkDiggler/tamagotchi-api/internal/errors"
)

// fileDocument is the on-disk layout of the file store
type fileDocument struct {
	SchemaVersion int                        `json:"schema_version"`
	Creatures     map[string]json.RawMessage `json:"creatures"`
}

// FileConfig contains configuration for the JSON file creature repository
type FileConfig struct {
	// Path of the JSON document. It is created on the first Flush.
	Path string
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", cfg.Path, vb)
	return vb.Build()
}

// FileRepository keeps creatures in memory and writes the whole document on Flush.
// Saves between flushes are lost if the process dies. Records that fail to decode
// are kept verbatim and written back until a Save replaces them.
type FileRepository struct {
	path string

	mu         sync.RWMutex
	creatures  map[string]*tamagotchi.Creature
	unreadable map[string]json.RawMessage
	dirty      bool
}

// NewFile loads the document at cfg.Path, migrating legacy records, and returns a
// repository backed by it. A missing file yields an empty store.
func NewFile(cfg *FileConfig) (*FileRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	doc, err := loadDocument(cfg.Path)
	if err != nil {
		return nil, err
	}

	return &FileRepository{
		path:       cfg.Path,
		creatures:  doc.creatures,
		unreadable: doc.unreadable,
		dirty:      doc.migrated,
	}, nil
}

// Get implements Repository
func (r *FileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.creatures[input.UserID]
	if !ok {
		if _, bad := r.unreadable[input.UserID]; bad {
			return nil, errors.DataLossf("creature record for user %s could not be decoded", input.UserID)
		}
		return nil, errors.NotFoundf("no creature for user %s", input.UserID)
	}
	return &GetOutput{Creature: c.Clone()}, nil
}

// Save implements Repository. The change is durable only after Flush.
func (r *FileRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.creatures[input.Creature.UserID] = input.Creature.Clone()
	delete(r.unreadable, input.Creature.UserID)
	r.dirty = true

	return &SaveOutput{Creature: input.Creature}, nil
}

// List implements Repository. Creatures are returned in user id order.
func (r *FileRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &ListOutput{Creatures: sortedClones(r.creatures)}, nil
}

// Flush implements Repository. The document is written to a temporary file in the
// same directory and renamed over the old one.
func (r *FileRepository) Flush(ctx context.Context, _ FlushInput) (*FlushOutput, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.dirty {
		return &FlushOutput{}, nil
	}

	doc := fileDocument{
		SchemaVersion: tamagotchi.SchemaVersion,
		Creatures:     make(map[string]json.RawMessage, len(r.creatures)+len(r.unreadable)),
	}
	for id, raw := range r.unreadable {
		doc.Creatures[id] = raw
	}
	for id, c := range r.creatures {
		data, err := tamagotchi.EncodeRecord(c)
		if err != nil {
			return nil, err
		}
		doc.Creatures[id] = data
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode creature document")
	}

	if err := writeFileAtomic(r.path, data); err != nil {
		return nil, err
	}
	r.dirty = false

	slog.DebugContext(ctx, "flushed creature document",
		"path", r.path,
		"count", len(r.creatures))

	return &FlushOutput{Written: true}, nil
}

// loadedDocument is the decoded content of a creature file
type loadedDocument struct {
	creatures  map[string]*tamagotchi.Creature
	unreadable map[string]json.RawMessage
	// migrated reports legacy data that should be written back
	migrated bool
}

// loadDocument reads path. A record that cannot be decoded is logged and set aside;
// only a file that is unreadable as a whole fails the load.
func loadDocument(path string) (*loadedDocument, error) {
	loaded := &loadedDocument{
		creatures:  make(map[string]*tamagotchi.Creature),
		unreadable: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return loaded, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "creature file is not a JSON object")
	}

	entries := top
	legacy := true
	if _, ok := top["schema_version"]; ok {
		var doc fileDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "creature file has unexpected layout")
		}
		if doc.SchemaVersion > tamagotchi.SchemaVersion {
			return nil, errors.DataLossf("creature file schema_version %d is newer than supported %d",
				doc.SchemaVersion, tamagotchi.SchemaVersion)
		}
		entries = doc.Creatures
		legacy = doc.SchemaVersion < tamagotchi.SchemaVersion
	}

	for id, raw := range entries {
		c, err := decodeEntry(id, raw)
		if err != nil {
			slog.Warn("skipping unreadable creature record",
				"path", path,
				"user_id", id,
				"error", err)
			loaded.unreadable[id] = raw
			continue
		}
		loaded.creatures[c.UserID] = c
	}

	loaded.migrated = legacy && len(loaded.creatures) > 0
	return loaded, nil
}

// decodeEntry decodes one record. Legacy files keyed records by user id and did not
// always repeat it inside the record.
func decodeEntry(id string, raw json.RawMessage) (*tamagotchi.Creature, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "creature record is not a JSON object")
	}
	if _, ok := fields["user_id"]; !ok {
		fields["user_id"] = id
		patched, err := json.Marshal(fields)
		if err != nil {
			return nil, errors.Wrap(err, "failed to re-encode creature record")
		}
		raw = patched
	}
	return tamagotchi.DecodeRecord(raw)
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file in %s", dir)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Wrap(err, "failed to write creature document")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return errors.Wrap(err, "failed to sync creature document")
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Wrap(err, "failed to close creature document")
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return errors.Wrapf(err, "failed to replace %s", path)
	}
	return nil
}
