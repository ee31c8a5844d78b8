package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func TestPropertyChain(t *testing.T) {
	t.Run("empty chain", func(t *testing.T) {
		c := validator.NewPropertyChain()
		assert.Equal(t, 0, c.Len())
		assert.Equal(t, "", c.String())
		assert.Equal(t, "Name", c.BuildPropertyName("Name"))
		assert.Equal(t, "", c.BuildPropertyName(""))
	})

	t.Run("segments", func(t *testing.T) {
		c := validator.NewPropertyChain("Customer", "", "Address")
		assert.Equal(t, []string{"Customer", "Address"}, c.Segments())
		assert.Equal(t, "Customer.Address", c.String())
		assert.Equal(t, "Customer.Address.Line1", c.BuildPropertyName("Line1"))
		assert.Equal(t, "Customer.Address", c.BuildPropertyName(""))
	})

	t.Run("indexer decorates last segment", func(t *testing.T) {
		c := validator.NewPropertyChain("Orders")
		c.AddIndexer(2)
		assert.Equal(t, "Orders[2].Total", c.BuildPropertyName("Total"))

		empty := validator.NewPropertyChain()
		empty.AddIndexer(1)
		assert.Equal(t, 0, empty.Len())
	})

	t.Run("child leaves parent untouched", func(t *testing.T) {
		parent := validator.NewPropertyChain("Customer")
		child := parent.Child("Address")
		child.Add("Line1")

		assert.Equal(t, "Customer", parent.String())
		assert.Equal(t, "Customer.Address.Line1", child.String())
	})

	t.Run("nil chain", func(t *testing.T) {
		var c *validator.PropertyChain
		assert.Nil(t, c.Segments())
		assert.Equal(t, 0, c.Len())
		assert.Equal(t, "Name", c.BuildPropertyName("Name"))
		assert.Equal(t, "Sub", c.Child("Sub").String())
	})
}
