package directory

import (
	"context"
	"reflect"

	"github.com/callboardhq/callboard/internal/model"
)

// Backend abstracts where the directory mapping lives. The store package
// provides the two implementations: a database-backed store and a
// commit-file store that writes the mapping through the GitHub contents
// API. The editor does not know or care which one it was given; the
// selection happens once at startup from config.
type Backend interface {
	LoadSections(ctx context.Context) (Sections, error)
	SaveSections(ctx context.Context, s Sections) error
}

// FlagFunc reports whether admin saves currently target the database.
// The admin UI fetches this once per page load to label the save button.
type FlagFunc func(ctx context.Context) (bool, error)

// State is the editor's coarse lifecycle state.
type State int

const (
	StateLoading State = iota // initial load in flight
	StateReady                // mapping loaded, accepting edits
	StateSaving               // save in flight
)

// MessageKind distinguishes inline error and success messages.
type MessageKind string

const (
	MessageError   MessageKind = "error"
	MessageSuccess MessageKind = "success"
)

// Message is the inline operator-facing message. Backend error strings
// are surfaced verbatim in Text.
type Message struct {
	Kind MessageKind
	Text string
}

// Editor is the admin directory editing state machine. It owns a working
// copy of the section mapping plus the last saved baseline, and funnels
// every save through the configured backend. A failed save leaves the
// working copy untouched so the operator can retry without re-entering
// anything.
type Editor struct {
	backend   Backend
	fetchFlag FlagFunc

	state       State
	sections    Sections
	baseline    Sections
	useDatabase bool
	message     *Message
}

// NewEditor builds an editor in the loading state. fetchFlag may be nil
// when the caller does not need the backend flag (tests mostly).
func NewEditor(backend Backend, fetchFlag FlagFunc) *Editor {
	return &Editor{
		backend:   backend,
		fetchFlag: fetchFlag,
		state:     StateLoading,
		sections:  NewSections(),
		baseline:  NewSections(),
	}
}

// Load fetches the section mapping and the active-backend flag
// concurrently. Either fetch failing degrades to an empty mapping plus an
// inline error message; Load itself never returns an error to the caller.
func (e *Editor) Load(ctx context.Context) {
	e.state = StateLoading
	e.message = nil

	type sectionsResult struct {
		sections Sections
		err      error
	}
	secCh := make(chan sectionsResult, 1)
	flagCh := make(chan bool, 1)

	go func() {
		s, err := e.backend.LoadSections(ctx)
		secCh <- sectionsResult{sections: s, err: err}
	}()
	go func() {
		if e.fetchFlag == nil {
			flagCh <- false
			return
		}
		// A flag fetch failure is not worth an error banner; default to
		// the file-commit label.
		useDB, err := e.fetchFlag(ctx)
		if err != nil {
			useDB = false
		}
		flagCh <- useDB
	}()

	res := <-secCh
	e.useDatabase = <-flagCh

	if res.err != nil {
		e.sections = NewSections()
		e.baseline = NewSections()
		e.message = &Message{Kind: MessageError, Text: res.err.Error()}
		e.state = StateReady
		return
	}
	if res.sections == nil {
		res.sections = NewSections()
	}
	e.sections = res.sections
	e.baseline = res.sections.Clone()
	e.state = StateReady
}

// Sections exposes the working copy for rendering and for the mutation
// helpers below.
func (e *Editor) Sections() Sections { return e.sections }

// State reports the coarse lifecycle state.
func (e *Editor) State() State { return e.state }

// UsesDatabase reports the backend flag fetched during Load.
func (e *Editor) UsesDatabase() bool { return e.useDatabase }

// Message returns the current inline message, or nil.
func (e *Editor) Message() *Message { return e.message }

// Dirty reports whether the working copy differs from the saved baseline.
func (e *Editor) Dirty() bool {
	return !reflect.DeepEqual(e.sections, e.baseline)
}

// UpdateEntry applies a partial entry update to the working copy.
func (e *Editor) UpdateEntry(section string, index int, patch EntryPatch) {
	e.sections.UpdateEntry(section, index, patch)
}

// AddEntry appends an entry; invalid entries are silently ignored by the
// underlying transform.
func (e *Editor) AddEntry(section string, entry model.DirectoryEntry) {
	e.sections.AddEntry(section, entry)
}

// RemoveEntry removes an entry, dropping the section when it empties.
func (e *Editor) RemoveEntry(section string, index int) {
	e.sections.RemoveEntry(section, index)
}

// AddSection creates a new empty section; a duplicate or blank name sets
// an inline error message and leaves the mapping unchanged.
func (e *Editor) AddSection(name string) {
	if err := e.sections.AddSection(name); err != nil {
		e.message = &Message{Kind: MessageError, Text: err.Error()}
		return
	}
	e.message = nil
}

// RemoveSection deletes a section and its entries.
func (e *Editor) RemoveSection(name string) {
	e.sections.RemoveSection(name)
}

// Save pushes the entire working copy to the backend. On success the
// working copy becomes the new saved baseline and any previous error is
// cleared. On failure the backend's error text is surfaced verbatim and
// the working copy is left untouched so a retry loses nothing. The error
// is also returned for callers that branch on it.
func (e *Editor) Save(ctx context.Context) error {
	if e.state != StateReady {
		return nil
	}
	e.state = StateSaving
	err := e.backend.SaveSections(ctx, e.sections.Clone())
	e.state = StateReady
	if err != nil {
		e.message = &Message{Kind: MessageError, Text: err.Error()}
		return err
	}
	e.baseline = e.sections.Clone()
	e.message = &Message{Kind: MessageSuccess, Text: "Saved."}
	return nil
}
