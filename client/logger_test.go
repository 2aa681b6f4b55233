package client_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kod2ulz/fatzebra-gateway/client"
)

var _ = Describe("Redact", func() {

	It("masks card numbers and drops cvv", func() {
		out := client.Redact(client.Payload{
			"card_number": "5123456789012346",
			"cvv":         "123",
			"reference":   "ABC",
			"card":        client.Payload{"card_number": "4111111111111111", "cvv": "999"},
		})
		Expect(out).To(Equal(client.Payload{
			"card_number": "512345XXXXXX2346",
			"reference":   "ABC",
			"card":        client.Payload{"card_number": "411111XXXXXX1111"},
		}))
	})

	It("redacts objects inside lists", func() {
		in := client.Payload{
			"cards": []client.Payload{
				{"card_number": "5123456789012346", "cvv": "123"},
				{"accounts": []any{map[string]any{"account_number": "012345678"}}},
			},
			"tags": []string{"a"},
		}
		Expect(client.Redact(in)).To(Equal(client.Payload{
			"cards": []any{
				client.Payload{"card_number": "512345XXXXXX2346"},
				client.Payload{"accounts": []any{client.Payload{"account_number": "XXXXX5678"}}},
			},
			"tags": []any{"a"},
		}))
		Expect(in["cards"].([]client.Payload)[0]).To(HaveKeyWithValue("cvv", "123"))
	})

		It("does not modify its input", func() {
		in := client.Payload{"cvv": "123"}
		client.Redact(in)
		Expect(in).To(HaveKey("cvv"))
	})

	It("masks short numbers", func() {
		Expect(client.Mask("012345678")).To(Equal("XXXXX5678"))
		Expect(client.Mask("123")).To(Equal("XXX"))
	})
})
