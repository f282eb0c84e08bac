package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct {
	ID     string
	Name   string
	Code   string
	Status string
}

func cardFields(c card) []string { return []string{c.Name, c.Code} }
func cardStatus(c card) string   { return c.Status }

var cards = []card{
	{ID: "1", Name: "ООО \"Строймаш\"", Code: "7701234567", Status: "new"},
	{ID: "2", Name: "АО \"ГорТех\"", Code: "7702345678", Status: "coordination"},
	{ID: "3", Name: "ЗАО \"Металлург\"", Code: "7703456789", Status: "new"},
	{ID: "4", Name: "Volvo L120", Code: "VLV120HL11223", Status: "done"},
}

func ids(items []card) []string {
	out := make([]string, 0, len(items))
	for _, c := range items {
		out = append(out, c.ID)
	}
	return out
}

func TestFilter_EmptySearchMatchesEverything(t *testing.T) {
	got := Filter(cards, "", cardFields)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))

	got = Filter(cards, "   ", cardFields)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(got))
}

func TestFilter_CaseInsensitiveCyrillic(t *testing.T) {
	testCases := []struct {
		name   string
		search string
		want   []string
	}{
		{"точное совпадение", "Строймаш", []string{"1"}},
		{"нижний регистр", "строймаш", []string{"1"}},
		{"верхний регистр", "ГОРТЕХ", []string{"2"}},
		{"латиница", "volvo", []string{"4"}},
		{"по коду", "7702345678", []string{"2"}},
		{"общий префикс", "770", []string{"1", "2", "3"}},
		{"нет совпадений", "Komatsu", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Filter(cards, tc.search, cardFields)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestFilter_NoMatchIsEmptyNotNil(t *testing.T) {
	got := Filter(cards, "нет такого", cardFields)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = Filter([]card(nil), "", cardFields)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_EveryIndexedSubstringMatches(t *testing.T) {
	for _, c := range cards {
		for _, field := range cardFields(c) {
			runes := []rune(field)
			for start := 0; start < len(runes); start += 3 {
				end := start + 4
				if end > len(runes) {
					end = len(runes)
				}
				q := string(runes[start:end])
				assert.Contains(t, ids(Filter(cards, q, cardFields)), c.ID, "query %q", q)
			}
		}
	}
}

func TestFilter_WithPredicates(t *testing.T) {
	got := Filter(cards, "770", cardFields, Equals("new", cardStatus))
	assert.Equal(t, []string{"1", "3"}, ids(got))

	got = Filter(cards, "", cardFields, Equals("all", cardStatus))
	assert.Len(t, got, 4)

	got = Filter(cards, "", cardFields, Equals("", cardStatus))
	assert.Len(t, got, 4)

	got = Filter(cards, "Строймаш", cardFields, Equals("coordination", cardStatus))
	assert.Empty(t, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := append([]card(nil), cards...)
	_ = Filter(in, "ГорТех", cardFields)
	assert.Equal(t, cards, in)
}

func TestGroup_IncludesEmptyBucketsInOrder(t *testing.T) {
	order := []string{"new", "coordination", "completed"}
	buckets := Group(cards[:3], order, cardStatus)

	require.Len(t, buckets, 3)
	assert.Equal(t, "new", buckets[0].Status)
	assert.Equal(t, []string{"1", "3"}, ids(buckets[0].Items))
	assert.Equal(t, []string{"2"}, ids(buckets[1].Items))
	assert.NotNil(t, buckets[2].Items)
	assert.Empty(t, buckets[2].Items)
}

func TestGroup_FlattenPreservesMembership(t *testing.T) {
	order := []string{"coordination", "new"}
	filtered := Filter(cards[:3], "", cardFields)
	flat := Flatten(Group(filtered, order, cardStatus))

	assert.ElementsMatch(t, ids(filtered), ids(flat))
	assert.Len(t, flat, len(filtered))
}

func TestGroup_UnknownStatusIsDropped(t *testing.T) {
	buckets := Group(cards, []string{"new", "coordination"}, cardStatus)
	assert.Len(t, Flatten(buckets), 3)
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("Экскаватор CAT 320", "экскаватор"))
	assert.True(t, Contains("Экскаватор CAT 320", "cat"))
	assert.False(t, Contains("Экскаватор CAT 320", "Komatsu"))
}
