package meta

import "testing"

func TestParseDocBlockEmpty(t *testing.T) {
	snapshot := ParseDocBlock("")
	if snapshot.Text != "" {
		t.Errorf("text = %q", snapshot.Text)
	}
	if snapshot.Tags == nil || len(snapshot.Tags) != 0 {
		t.Errorf("tags = %+v, want empty non-nil slice", snapshot.Tags)
	}
}

func TestParseDocBlockTextOnly(t *testing.T) {
	snapshot := ParseDocBlock(`/**
 * Emitted whenever the list changes.
 * Carries the full snapshot.
 */`)
	want := "Emitted whenever the list changes.\nCarries the full snapshot."
	if snapshot.Text != want {
		t.Errorf("text = %q, want %q", snapshot.Text, want)
	}
	if len(snapshot.Tags) != 0 {
		t.Errorf("tags = %+v", snapshot.Tags)
	}
}

func TestParseDocBlockTags(t *testing.T) {
	snapshot := ParseDocBlock(`/**
 * Toggle notification.
 * @internal
 * @deprecated use todoToggled instead
 */`)
	if snapshot.Text != "Toggle notification." {
		t.Errorf("text = %q", snapshot.Text)
	}
	want := []DocTag{
		{Name: "internal"},
		{Name: "deprecated", Text: "use todoToggled instead"},
	}
	if len(snapshot.Tags) != len(want) {
		t.Fatalf("tags = %+v, want %+v", snapshot.Tags, want)
	}
	for i, tag := range want {
		if snapshot.Tags[i] != tag {
			t.Errorf("tag[%d] = %+v, want %+v", i, snapshot.Tags[i], tag)
		}
	}
}

func TestParseDocBlockTagContinuation(t *testing.T) {
	snapshot := ParseDocBlock(`/**
 * @remarks The payload is frozen
 * and must not be mutated.
 */`)
	if len(snapshot.Tags) != 1 {
		t.Fatalf("tags = %+v", snapshot.Tags)
	}
	want := "The payload is frozen\nand must not be mutated."
	if snapshot.Tags[0].Text != want {
		t.Errorf("tag text = %q, want %q", snapshot.Tags[0].Text, want)
	}
}

func TestParseDocBlockAtSignAlone(t *testing.T) {
	// "@ something" is prose, not a tag.
	snapshot := ParseDocBlock(`/**
 * @ the usual address.
 */`)
	if len(snapshot.Tags) != 0 {
		t.Errorf("tags = %+v", snapshot.Tags)
	}
	if snapshot.Text != "@ the usual address." {
		t.Errorf("text = %q", snapshot.Text)
	}
}
