// Package seed loads reference data and sample records from a YAML file into
// whichever stores the server is running with.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"retention/internal/authz"
	classmodels "retention/internal/classification/models"
	recmodels "retention/internal/records/models"
	id "retention/pkg/domain"
)

// File is the seed document.
type File struct {
	Classifications []Classification `yaml:"classifications"`
	Locations       []Location       `yaml:"locations"`
	Users           []User           `yaml:"users"`
	Schedules       []Schedule       `yaml:"schedules"`
	Containers      []Container      `yaml:"containers"`
	Records         []Record         `yaml:"records"`
}

// ClassificationIDs lists the classifications the document defines, for
// invalidating cached copies after it has been applied.
func (f *File) ClassificationIDs() []id.ClassificationID {
	out := make([]id.ClassificationID, 0, len(f.Classifications))
	for _, c := range f.Classifications {
		out = append(out, id.ClassificationID(c.ID))
	}
	return out
}

type Classification struct {
	ID       int64   `yaml:"id"`
	Name     string  `yaml:"name"`
	Type     string  `yaml:"type"`
	Children []int64 `yaml:"children"`
}

type Location struct {
	ID         int64  `yaml:"id"`
	Code       string `yaml:"code"`
	Name       string `yaml:"name"`
	Restricted bool   `yaml:"restricted"`
}

type User struct {
	ID        int64   `yaml:"id"`
	Role      string  `yaml:"role"`
	Locations []int64 `yaml:"locations"`
}

type Schedule struct {
	ID    int64  `yaml:"id"`
	Name  string `yaml:"name"`
	Years int    `yaml:"years"`
}

type Container struct {
	ID       int64  `yaml:"id"`
	Number   string `yaml:"number"`
	Location int64  `yaml:"location"`
}

type Record struct {
	Number         string     `yaml:"number"`
	Title          string     `yaml:"title"`
	Schedule       int64      `yaml:"schedule"`
	Container      int64      `yaml:"container"`
	Location       int64      `yaml:"location"`
	Classification []int64    `yaml:"classification"`
	ClosedAt       *time.Time `yaml:"closed_at"`
}

// ClassificationWriter is implemented by the classification stores.
type ClassificationWriter interface {
	Save(ctx context.Context, c *classmodels.Classification) error
	AddChild(ctx context.Context, parent, child id.ClassificationID) error
}

// AuthzWriter is implemented by the authorization stores.
type AuthzWriter interface {
	SaveLocation(ctx context.Context, loc *authz.Location) error
	SetUserRole(ctx context.Context, userID id.UserID, role authz.Role) error
	AddMembership(ctx context.Context, userID id.UserID, locationID id.LocationID) error
}

// RecordWriter is implemented by the record stores.
type RecordWriter interface {
	SaveSchedule(ctx context.Context, s *recmodels.Schedule) error
	SaveContainer(ctx context.Context, c *recmodels.Container) error
	Create(ctx context.Context, r *recmodels.Record) error
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}

// Targets names the stores Apply writes into.
type Targets struct {
	Classifications ClassificationWriter
	Authz           AuthzWriter
	Records         RecordWriter
}

// Load reads and parses a seed file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a seed document, rejecting unknown keys.
func Parse(raw []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Apply writes the document in dependency order. Records whose number
// already exists are skipped, so Apply can run on every start.
func Apply(ctx context.Context, f *File, t Targets) error {
	for _, c := range f.Classifications {
		typ, err := classmodels.ParseType(c.Type)
		if err != nil {
			return fmt.Errorf("classification %d: %w", c.ID, err)
		}
		model, err := classmodels.NewClassification(id.ClassificationID(c.ID), c.Name, typ)
		if err != nil {
			return fmt.Errorf("classification %d: %w", c.ID, err)
		}
		if err := t.Classifications.Save(ctx, model); err != nil {
			return fmt.Errorf("save classification %d: %w", c.ID, err)
		}
	}
	for _, c := range f.Classifications {
		for _, child := range c.Children {
			if err := t.Classifications.AddChild(ctx, id.ClassificationID(c.ID), id.ClassificationID(child)); err != nil {
				return fmt.Errorf("link classification %d -> %d: %w", c.ID, child, err)
			}
		}
	}

	for _, l := range f.Locations {
		loc := &authz.Location{ID: id.LocationID(l.ID), Code: l.Code, Name: l.Name, Restricted: l.Restricted}
		if err := t.Authz.SaveLocation(ctx, loc); err != nil {
			return fmt.Errorf("save location %d: %w", l.ID, err)
		}
	}
	for _, u := range f.Users {
		role, err := authz.ParseRole(u.Role)
		if err != nil {
			return fmt.Errorf("user %d: %w", u.ID, err)
		}
		if err := t.Authz.SetUserRole(ctx, id.UserID(u.ID), role); err != nil {
			return fmt.Errorf("save user %d: %w", u.ID, err)
		}
		for _, l := range u.Locations {
			if err := t.Authz.AddMembership(ctx, id.UserID(u.ID), id.LocationID(l)); err != nil {
				return fmt.Errorf("membership %d@%d: %w", u.ID, l, err)
			}
		}
	}

	for _, s := range f.Schedules {
		if err := t.Records.SaveSchedule(ctx, &recmodels.Schedule{ID: id.ScheduleID(s.ID), Name: s.Name, Years: s.Years}); err != nil {
			return fmt.Errorf("save schedule %d: %w", s.ID, err)
		}
	}
	for _, c := range f.Containers {
		container := &recmodels.Container{ID: id.ContainerID(c.ID), Number: c.Number, LocationID: id.LocationID(c.Location)}
		if err := t.Records.SaveContainer(ctx, container); err != nil {
			return fmt.Errorf("save container %d: %w", c.ID, err)
		}
	}

	now := time.Now()
	for _, r := range f.Records {
		exists, err := t.Records.ExistsByNumber(ctx, r.Number)
		if err != nil {
			return fmt.Errorf("check record %s: %w", r.Number, err)
		}
		if exists {
			continue
		}
		path := make([]id.ClassificationID, 0, len(r.Classification))
		for _, c := range r.Classification {
			path = append(path, id.ClassificationID(c))
		}
		rec, err := recmodels.NewRecord(r.Number, r.Title, id.ScheduleID(r.Schedule),
			id.ContainerID(r.Container), id.LocationID(r.Location), path, now)
		if err != nil {
			return fmt.Errorf("record %s: %w", r.Number, err)
		}
		rec.ClosedAt = r.ClosedAt
		if err := t.Records.Create(ctx, rec); err != nil {
			return fmt.Errorf("create record %s: %w", r.Number, err)
		}
	}
	return nil
}
