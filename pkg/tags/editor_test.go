package tags_test

import (
	"context"
	"errors"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"

	"github.com/tikodea/dashboard-go/pkg/tags"
)

type fakeSaver struct {
	err   error
	calls [][]string
}

func (f *fakeSaver) SetTags(ctx context.Context, videoID int64, t []string) error {
	saved := make([]string, len(t))
	copy(saved, t)
	f.calls = append(f.calls, saved)
	return f.err
}

var _ = Describe("Editor", func() {
	var (
		ctx    context.Context
		saver  *fakeSaver
		editor *tags.Editor
	)

	newEditor := func(baseline ...string) *tags.Editor {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		return tags.NewEditor(1, baseline, saver, logger)
	}

	BeforeEach(func() {
		ctx = context.Background()
		saver = &fakeSaver{}
		editor = newEditor("existing")
		editor.StartEditing()
	})

	Describe("AddTag", func() {
		It("trims and appends a valid tag", func() {
			Expect(editor.AddTag("  newtag  ")).To(Succeed())
			Expect(editor.StagedTags()).To(Equal([]string{"existing", "newtag"}))
			Expect(editor.Err()).To(BeEmpty())
		})

		It("rejects whitespace-only input", func() {
			err := editor.AddTag("   ")
			Expect(err).To(HaveOccurred())

			var validationErr *tags.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Message).To(Equal("Tag cannot be empty"))
			Expect(editor.Err()).To(Equal("Tag cannot be empty"))
			Expect(editor.StagedTags()).To(Equal([]string{"existing"}))
		})

		It("rejects tags longer than 30 characters", func() {
			err := editor.AddTag(strings.Repeat("x", 31))
			Expect(err).To(HaveOccurred())
			Expect(editor.Err()).To(Equal("Tag must be 30 characters or less"))
			Expect(editor.StagedTags()).To(Equal([]string{"existing"}))
		})

		It("accepts a tag of exactly 30 characters", func() {
			Expect(editor.AddTag(strings.Repeat("x", 30))).To(Succeed())
		})

		It("rejects duplicates with exact case-sensitive match", func() {
			err := editor.AddTag("existing")
			Expect(err).To(HaveOccurred())
			Expect(editor.Err()).To(Equal("Tag already exists"))

			// different case is a different tag
			Expect(editor.AddTag("Existing")).To(Succeed())
		})

		It("clears a previous error on a successful add", func() {
			_ = editor.AddTag("")
			Expect(editor.Err()).NotTo(BeEmpty())

			Expect(editor.AddTag("fresh")).To(Succeed())
			Expect(editor.Err()).To(BeEmpty())
		})
	})

	Describe("RemoveTag", func() {
		It("removes an exact match", func() {
			editor.RemoveTag("existing")
			Expect(editor.StagedTags()).To(BeEmpty())
		})

		It("is a no-op for an absent tag", func() {
			editor.RemoveTag("ghost")
			Expect(editor.StagedTags()).To(Equal([]string{"existing"}))
		})
	})

	Describe("Save", func() {
		It("transmits the complete staged collection and commits it", func() {
			Expect(editor.AddTag("one")).To(Succeed())
			Expect(editor.AddTag("two")).To(Succeed())
			editor.RemoveTag("existing")

			Expect(editor.Save(ctx)).To(Succeed())
			Expect(saver.calls).To(HaveLen(1))
			Expect(saver.calls[0]).To(Equal([]string{"one", "two"}))

			Expect(editor.State()).To(Equal(tags.StateViewing))
			Expect(editor.BaselineTags()).To(Equal([]string{"one", "two"}))
		})

		It("notifies the display layer after a successful save", func() {
			refreshed := false
			editor.OnSaved(func() { refreshed = true })

			Expect(editor.Save(ctx)).To(Succeed())
			Expect(refreshed).To(BeTrue())
		})

		It("keeps staged tags intact on failure so the user can retry", func() {
			saver.err = errors.New("network down")
			Expect(editor.AddTag("keeper")).To(Succeed())

			Expect(editor.Save(ctx)).NotTo(Succeed())
			Expect(editor.State()).To(Equal(tags.StateEditing))
			Expect(editor.Err()).To(Equal("Failed to save tags"))
			Expect(editor.StagedTags()).To(Equal([]string{"existing", "keeper"}))
			Expect(editor.BaselineTags()).To(Equal([]string{"existing"}))

			// retry after the backend recovers
			saver.err = nil
			Expect(editor.Save(ctx)).To(Succeed())
			Expect(editor.BaselineTags()).To(Equal([]string{"existing", "keeper"}))
		})

		It("is a no-op outside the editing state", func() {
			viewing := newEditor("a")
			Expect(viewing.Save(ctx)).To(Succeed())
			Expect(saver.calls).To(BeEmpty())
		})
	})

	Describe("Cancel", func() {
		It("restores the staged collection to the committed baseline", func() {
			Expect(editor.AddTag("scratch")).To(Succeed())
			editor.RemoveTag("existing")

			editor.Cancel()
			Expect(editor.State()).To(Equal(tags.StateViewing))
			Expect(editor.StagedTags()).To(Equal([]string{"existing"}))
			Expect(editor.Err()).To(BeEmpty())
		})
	})

	Describe("StartEditing", func() {
		It("seeds the staged collection from the baseline", func() {
			fresh := newEditor("a", "b")
			Expect(fresh.State()).To(Equal(tags.StateViewing))

			fresh.StartEditing()
			Expect(fresh.State()).To(Equal(tags.StateEditing))
			Expect(fresh.StagedTags()).To(Equal([]string{"a", "b"}))
		})
	})
})
