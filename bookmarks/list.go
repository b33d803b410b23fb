package bookmarks

import (
	"github.com/dendrascience/sftp-mounts/mountdir"
)

// ListOptions controls List.
type ListOptions struct {
	// Status adds the observed mount state of every bookmark.
	Status bool
}

// ListEntry is one listed bookmark.
type ListEntry struct {
	Name      string         `json:"name" yaml:"name"`
	Path      string         `json:"path" yaml:"path"`
	Remote    string         `json:"remote" yaml:"remote"`
	Port      int            `json:"port" yaml:"port"`
	LocalPath string         `json:"local_path" yaml:"local_path"`
	State     mountdir.State `json:"state,omitempty" yaml:"state,omitempty"`
}

// Listing is the result of List, renderable as a table, JSON or YAML.
type Listing struct {
	Bookmarks []ListEntry `json:"bookmarks" yaml:"bookmarks"`
	withState bool
}

// Headers implements output.TableRenderer.
func (l Listing) Headers() []string {
	if l.withState {
		return []string{"Nickname", "Path", "State"}
	}
	return []string{"Nickname", "Path"}
}

// Rows implements output.TableRenderer.
func (l Listing) Rows() [][]string {
	rows := make([][]string, 0, len(l.Bookmarks))
	for _, b := range l.Bookmarks {
		row := []string{b.Name, b.Path}
		if l.withState {
			row = append(row, string(b.State))
		}
		rows = append(rows, row)
	}
	return rows
}

// MinWidths implements output.ColumnWidths.
func (l Listing) MinWidths() []int {
	return []int{48, 28}
}

// KeyColumn implements output.KeyColumn.
func (l Listing) KeyColumn() int {
	return 0
}

// List prints every bookmark in settings order. It does not look at mount
// state unless opts.Status is set.
func (o *Operations) List(opts ListOptions) (Listing, error) {
	if _, err := o.validate(); err != nil {
		return Listing{}, err
	}

	l := Listing{Bookmarks: make([]ListEntry, 0, len(o.settings.Bookmarks)), withState: opts.Status}
	for _, b := range o.settings.Bookmarks {
		e := ListEntry{
			Name:      b.Name,
			Path:      b.Path,
			Remote:    b.User + "@" + b.Host,
			Port:      b.Port,
			LocalPath: o.dirs.Path(b.Name),
		}
		if opts.Status {
			e.State = o.dirs.State(b.Name)
		}
		l.Bookmarks = append(l.Bookmarks, e)
	}

	if err := o.out.Print(l); err != nil {
		return l, fail(err)
	}
	return l, nil
}
