package registry

import "fmt"

// Kind tags the category of a registered resource. The registry treats
// kinds as opaque labels, so new categories can be introduced without
// touching storage or resolution logic.
type Kind string

const (
	// KindCommand marks resources dispatched as host commands.
	KindCommand Kind = "command"
	// KindService marks resources exposed to the host as callable services.
	KindService Kind = "service"
)

// Key identifies the slot a resource competes for: one kind, one name.
type Key struct {
	Kind Kind
	Name string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Kind, k.Name)
}

// Entry is one immutable registration record. The registry owns every
// entry it stores; callers receive copies, so registry state cannot be
// mutated through them. Handle is an opaque capability supplied by the
// registering plugin; the registry never inspects or invokes it.
type Entry struct {
	Kind    Kind
	Name    string
	Handle  any
	Owner   string
	Version string
	Seq     uint64
}

// Key returns the registration slot this entry competes for.
func (e Entry) Key() Key {
	return Key{Kind: e.Kind, Name: e.Name}
}

// Versioned reports whether the entry carries an explicit version tag.
func (e Entry) Versioned() bool {
	return e.Version != ""
}
