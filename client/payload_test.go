package client_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kod2ulz/fatzebra-gateway/client"
)

var _ = Describe("Payload", func() {

	Context("Merge", func() {

		It("merges nested objects key by key", func() {
			base := client.Payload{"metadata": map[string]any{"b": 2}}
			out := client.Merge(base, client.Payload{"metadata": map[string]any{"a": 1}})
			Expect(out["metadata"]).To(Equal(client.Payload{"a": 1, "b": 2}))
		})

		It("concatenates lists", func() {
			base := client.Payload{"tags": []any{"one"}}
			out := client.Merge(base, client.Payload{"tags": []string{"two", "three"}})
			Expect(out["tags"]).To(Equal([]any{"one", "two", "three"}))
		})

		It("lets extra win on scalar collisions", func() {
			base := client.Payload{"reference": "ABC", "amount": int64(100)}
			out := client.Merge(base, client.Payload{"reference": "XYZ"})
			Expect(out["reference"]).To(Equal("XYZ"))
			Expect(out["amount"]).To(Equal(int64(100)))
		})

		It("replaces an object with a scalar from extra", func() {
			out := client.Merge(client.Payload{"fraud": client.Payload{"a": 1}}, client.Payload{"fraud": "off"})
			Expect(out["fraud"]).To(Equal("off"))
		})

		It("merges deeply nested objects", func() {
			base := client.Payload{"fraud": client.Payload{"customer": client.Payload{"first_name": "Jim"}}}
			extra := client.Payload{"fraud": client.Payload{"customer": client.Payload{"last_name": "Smith"}}}
			out := client.Merge(base, extra)
			Expect(out["fraud"]).To(Equal(client.Payload{
				"customer": client.Payload{"first_name": "Jim", "last_name": "Smith"},
			}))
		})

		It("does not modify its arguments", func() {
			base := client.Payload{"metadata": client.Payload{"b": 2}, "tags": []any{"one"}}
			extra := client.Payload{"metadata": client.Payload{"a": 1}, "tags": []any{"two"}}
			client.Merge(base, extra)
			Expect(base).To(Equal(client.Payload{"metadata": client.Payload{"b": 2}, "tags": []any{"one"}}))
			Expect(extra).To(Equal(client.Payload{"metadata": client.Payload{"a": 1}, "tags": []any{"two"}}))
		})

		It("copies objects appended from extra lists", func() {
			item := client.Payload{"name": "fee"}
			out := client.Merge(client.Payload{"items": []any{}}, client.Payload{"items": []client.Payload{item}})
			out["items"].([]any)[0].(client.Payload)["name"] = "changed"
			Expect(item).To(HaveKeyWithValue("name", "fee"))
		})

				It("handles nil inputs", func() {
			Expect(client.Merge(nil, nil)).To(BeEmpty())
			Expect(client.Merge(client.Payload{"a": 1}, nil)).To(Equal(client.Payload{"a": 1}))
		})
	})

	Context("Set", func() {

		It("allocates a nil payload", func() {
			var p client.Payload
			Expect(p.Set("a", 1)).To(Equal(client.Payload{"a": 1}))
		})

		It("skips conditional values", func() {
			p := client.Payload{}.SetIf(false, "cvv", "123").SetIf(true, "alias", "x")
			Expect(p).To(Equal(client.Payload{"alias": "x"}))
		})
	})
})
