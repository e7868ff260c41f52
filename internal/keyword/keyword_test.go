package keyword

import (
	"reflect"
	"testing"
)

func TestTopics(t *testing.T) {
	text := "Island hopping from Koh Tao: the best beaches, scuba diving and a night market"

	got := Topics(text)
	want := []string{"beach", "diving", "islands", "shopping"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Topics() = %v, want %v", got, want)
	}
}

func TestTopicsFoldsAccents(t *testing.T) {
	got := Topics("Visa À l'aéroport")
	found := false
	for _, topic := range got {
		if topic == "visas" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'visas' in %v", got)
	}
}

func TestTopicsNone(t *testing.T) {
	if got := Topics("Quarterly accounting report"); len(got) != 0 {
		t.Errorf("expected no topics, got %v", got)
	}
}

func TestExtract(t *testing.T) {
	text := "The ferries to Koh Samui leave from Donsak pier; ferries are cheap and the pier is busy."

	got := Extract(text, 4)
	want := []string{"ferries", "samui", "leave", "donsak"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtractSkipsStopWordsAndShortWords(t *testing.T) {
	got := Extract("This is the best guide to eat pad thai", 10)
	want := []string{"thai"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtractFoldsAccents(t *testing.T) {
	got := Extract("Crème brûlée in Chiang Mai", 3)
	want := []string{"creme", "brulee", "chiang"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestExtractZero(t *testing.T) {
	if got := Extract("plenty of words here", 0); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}
