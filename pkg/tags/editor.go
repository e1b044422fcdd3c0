// Package tags implements the staged tag-editing workflow for a video.
// Edits accumulate in a staged copy that is only committed by a successful
// save; the save always replaces the full server-side collection.
package tags

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

// State is the editor's position in the Viewing/Editing/Saving cycle.
type State string

const (
	StateViewing State = "viewing"
	StateEditing State = "editing"
	StateSaving  State = "saving"
)

// MaxTagLength is the longest accepted tag after trimming.
const MaxTagLength = 30

// User-facing messages surfaced through Err().
const (
	MsgTagEmpty   = "Tag cannot be empty"
	MsgTagTooLong = "Tag must be 30 characters or less"
	MsgTagExists  = "Tag already exists"
	MsgSaveFailed = "Failed to save tags"
)

// TagSaver persists the full replacement tag collection for a video. It is
// satisfied by backend.BackendClient.
type TagSaver interface {
	SetTags(ctx context.Context, videoID int64, tags []string) error
}

// ValidationError reports a locally rejected tag edit. It never crosses the
// network and is always surfaced as a field-level message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Editor is the tag editing state machine for one video. It is owned by a
// single display flow and is not safe for concurrent use.
type Editor struct {
	videoID  int64
	saver    TagSaver
	logger   *logrus.Logger
	state    State
	baseline []string
	staged   []string
	errMsg   string
	onSaved  func()
}

// NewEditor creates an editor seeded with the video's committed tags.
func NewEditor(videoID int64, baseline []string, saver TagSaver, logger *logrus.Logger) *Editor {
	if logger == nil {
		logger = logrus.New()
	}
	return &Editor{
		videoID:  videoID,
		saver:    saver,
		logger:   logger,
		state:    StateViewing,
		baseline: copyTags(baseline),
		staged:   copyTags(baseline),
	}
}

// OnSaved registers a callback invoked after a successful save, so the
// display layer can refresh the video record.
func (e *Editor) OnSaved(fn func()) {
	e.onSaved = fn
}

// State returns the current editor state.
func (e *Editor) State() State {
	return e.state
}

// Err returns the current field-level error message, empty when none.
func (e *Editor) Err() string {
	return e.errMsg
}

// BaselineTags returns the last committed tag collection.
func (e *Editor) BaselineTags() []string {
	return copyTags(e.baseline)
}

// StagedTags returns the in-progress tag collection.
func (e *Editor) StagedTags() []string {
	return copyTags(e.staged)
}

// StartEditing enters the editing state with a fresh staged copy of the
// baseline. No-op unless currently viewing.
func (e *Editor) StartEditing() {
	if e.state != StateViewing {
		return
	}
	e.staged = copyTags(e.baseline)
	e.errMsg = ""
	e.state = StateEditing
}

// AddTag validates and appends one tag to the staged collection. On
// rejection the staged collection is untouched and the message is kept in
// Err(); on success any prior error is cleared.
func (e *Editor) AddTag(text string) error {
	if e.state != StateEditing {
		return nil
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return e.reject(MsgTagEmpty)
	}
	if len(trimmed) > MaxTagLength {
		return e.reject(MsgTagTooLong)
	}
	for _, tag := range e.staged {
		if tag == trimmed {
			return e.reject(MsgTagExists)
		}
	}

	e.staged = append(e.staged, trimmed)
	e.errMsg = ""
	return nil
}

// RemoveTag removes the first exact match from the staged collection.
// Removing an absent tag is a no-op.
func (e *Editor) RemoveTag(text string) {
	if e.state != StateEditing {
		return
	}
	for i, tag := range e.staged {
		if tag == text {
			e.staged = append(e.staged[:i], e.staged[i+1:]...)
			return
		}
	}
}

// Save transmits the complete staged collection as a replacement. On
// success the staged tags become the new baseline and the editor returns to
// viewing; on failure the staged tags are kept intact so the user can retry
// without re-entering them. Re-entry while a save is in flight is a no-op.
func (e *Editor) Save(ctx context.Context) error {
	if e.state != StateEditing {
		return nil
	}

	e.state = StateSaving
	e.errMsg = ""

	err := e.saver.SetTags(ctx, e.videoID, copyTags(e.staged))
	if err != nil {
		e.logger.WithFields(logrus.Fields{
			"video_id": e.videoID,
		}).WithError(err).Error("Failed to save tags")
		e.errMsg = MsgSaveFailed
		e.state = StateEditing
		return err
	}

	e.baseline = copyTags(e.staged)
	e.state = StateViewing
	e.logger.WithFields(logrus.Fields{
		"video_id": e.videoID,
		"tags":     len(e.baseline),
	}).Debug("Tags saved")

	if e.onSaved != nil {
		e.onSaved()
	}
	return nil
}

// Cancel discards staged edits and returns to viewing. Disabled while a
// save is in flight.
func (e *Editor) Cancel() {
	if e.state != StateEditing {
		return
	}
	e.staged = copyTags(e.baseline)
	e.errMsg = ""
	e.state = StateViewing
}

func (e *Editor) reject(message string) error {
	e.errMsg = message
	return &ValidationError{Message: message}
}

func copyTags(tags []string) []string {
	out := make([]string, len(tags))
	copy(out, tags)
	return out
}
