package description_test

import (
	"reflect"
	"testing"

	"item-checklist/internal/description"
)

func TestInsertAt(t *testing.T) {
	tests := []struct {
		name   string
		desc   string
		cursor int
		text   string
		want   string
	}{
		{name: "Start", desc: "notes", cursor: 0, text: "[ts] ", want: "[ts] notes"},
		{name: "Middle", desc: "ab", cursor: 1, text: "-", want: "a-b"},
		{name: "End", desc: "ab", cursor: 2, text: "!", want: "ab!"},
		{name: "Past end clamps", desc: "ab", cursor: 99, text: "!", want: "ab!"},
		{name: "Negative clamps", desc: "ab", cursor: -3, text: "!", want: "!ab"},
		{name: "Rune offset", desc: "héllo", cursor: 2, text: "|", want: "hé|llo"},
		{name: "Empty description", desc: "", cursor: 4, text: "x", want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := description.InsertAt(tt.desc, tt.cursor, tt.text); got != tt.want {
				t.Errorf("InsertAt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinks(t *testing.T) {
	desc := "See https://example.com/a?b=1, and www.go.dev.\n" +
		"- [ ] review http://img.example.com/shot.PNG\n" +
		"ref #12 is not a link"

	got := description.Links(desc)
	want := []string{
		"https://example.com/a?b=1",
		"www.go.dev",
		"http://img.example.com/shot.PNG",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Links() = %v, want %v", got, want)
	}

	if empty := description.Links(""); len(empty) != 0 {
		t.Errorf("expected no links, got %v", empty)
	}
}

func TestImages(t *testing.T) {
	links := []string{"https://a.com/x.jpg", "https://a.com/y.JPEG", "https://a.com/z.gif", "https://a.com/doc.pdf", "https://a.com/png"}
	got := description.Images(links)
	want := []string{"https://a.com/x.jpg", "https://a.com/y.JPEG", "https://a.com/z.gif"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Images() = %v, want %v", got, want)
	}
}

func TestSubtaskRefs(t *testing.T) {
	got := description.SubtaskRefs("subtask #3\nsubtask #10 and subtask #3\nsubtask #x")
	want := []int{3, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SubtaskRefs() = %v, want %v", got, want)
	}
}
