package dedup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NageshProgrammer/leadequator/core"
)

func lead(link, title string) *core.Lead {
	return &core.Lead{Link: link, Title: title}
}

func TestLeads(t *testing.T) {
	t.Run("title collision beats URL distinctness", func(t *testing.T) {
		input := []*core.Lead{
			lead("a", "Hi"),
			lead("b", "hi"),  // distinct URL, same normalized title
			lead("a", "Bye"), // duplicate URL
		}

		got := Leads(input)

		assert.Len(t, got, 1)
		assert.Equal(t, "a", got[0].Link)
		assert.Equal(t, "Hi", got[0].Title)
	})

	t.Run("order preserved, first occurrence wins", func(t *testing.T) {
		input := []*core.Lead{
			lead("x", "One"),
			lead("y", "Two"),
			lead("x", "Three"),
			lead("z", "Four"),
		}

		got := Leads(input)

		assert.Len(t, got, 3)
		assert.Equal(t, "One", got[0].Title)
		assert.Equal(t, "Two", got[1].Title)
		assert.Equal(t, "Four", got[2].Title)
	})

	t.Run("title normalization trims and lowercases", func(t *testing.T) {
		input := []*core.Lead{
			lead("a", "  Steel RFP  "),
			lead("b", "steel rfp"),
		}

		got := Leads(input)
		assert.Len(t, got, 1)
	})

	t.Run("no duplicates passes through", func(t *testing.T) {
		input := []*core.Lead{
			lead("a", "One"),
			lead("b", "Two"),
		}
		assert.Equal(t, input, Leads(input))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Leads(nil))
	})
}
