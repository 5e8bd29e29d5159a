// Package directory provides the identities that may sign in.
package directory

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/grofast/portal-backend-go/internal/domain/user"
	"gopkg.in/yaml.v3"
)

type staticDirectory struct {
	entries []user.DirectoryEntry
	byEmail map[string]int
	byID    map[string]int
}

// NewStaticDirectory indexes entries by lower-cased email and id.
func NewStaticDirectory(entries []user.DirectoryEntry) (user.Directory, error) {
	d := &staticDirectory{
		entries: entries,
		byEmail: make(map[string]int, len(entries)),
		byID:    make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Identity.ID == "" || e.Identity.Email == "" {
			return nil, fmt.Errorf("%w: entry %d needs id and email", user.ErrInvalidDirectory, i)
		}
		if !e.Identity.Role.IsValid() {
			return nil, fmt.Errorf("%w: %s has unknown role %q", user.ErrInvalidDirectory, e.Identity.ID, e.Identity.Role)
		}
		email := strings.ToLower(e.Identity.Email)
		if _, dup := d.byEmail[email]; dup {
			return nil, fmt.Errorf("%w: duplicate email %s", user.ErrInvalidDirectory, email)
		}
		if _, dup := d.byID[e.Identity.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %s", user.ErrInvalidDirectory, e.Identity.ID)
		}
		d.byEmail[email] = i
		d.byID[e.Identity.ID] = i
	}
	return d, nil
}

// FromIdentities builds a directory with no password hashes.
func FromIdentities(identities []user.Identity) (user.Directory, error) {
	entries := make([]user.DirectoryEntry, 0, len(identities))
	for _, identity := range identities {
		entries = append(entries, user.DirectoryEntry{Identity: identity})
	}
	return NewStaticDirectory(entries)
}

type yamlEntry struct {
	user.Identity `yaml:",inline"`
	PasswordHash  string `yaml:"password_hash"`
}

type yamlFile struct {
	Users []yamlEntry `yaml:"users"`
}

// LoadYAML reads a directory file of the form
//
//	users:
//	  - id: emp-001
//	    name: Ravi Kumar
//	    email: ravi@grofast.com
//	    role: employee
//	    team_id: team-001
//	    password_hash: $2a$10$...
func LoadYAML(path string) (user.Directory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory file: %w", err)
	}
	return ParseYAML(raw)
}

func ParseYAML(raw []byte) (user.Directory, error) {
	var f yamlFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", user.ErrInvalidDirectory, err)
	}
	entries := make([]user.DirectoryEntry, 0, len(f.Users))
	for _, u := range f.Users {
		entries = append(entries, user.DirectoryEntry{Identity: u.Identity, PasswordHash: u.PasswordHash})
	}
	return NewStaticDirectory(entries)
}

// FindByEmail implements user.Directory.
func (d *staticDirectory) FindByEmail(ctx context.Context, email string) (user.DirectoryEntry, error) {
	i, ok := d.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return user.DirectoryEntry{}, user.ErrUserNotFound
	}
	return d.entries[i], nil
}

// FindByID implements user.Directory.
func (d *staticDirectory) FindByID(ctx context.Context, id string) (user.DirectoryEntry, error) {
	i, ok := d.byID[id]
	if !ok {
		return user.DirectoryEntry{}, user.ErrUserNotFound
	}
	return d.entries[i], nil
}

// List implements user.Directory.
func (d *staticDirectory) List(ctx context.Context) ([]user.Identity, error) {
	out := make([]user.Identity, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e.Identity)
	}
	return out, nil
}
