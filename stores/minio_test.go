package stores_test

import (
	"io"
	"strings"
	"testing/iotest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/kod2ulz/fatzebra-gateway/stores"
)

var _ = Describe("ReadAll", func() {

	It("reads the whole object", func() {
		var out []byte
		pem := strings.Repeat("-----BEGIN CERTIFICATE-----\n", 64)
		Expect(stores.ReadAll(&out, int64(len(pem)), strings.NewReader(pem))).To(Succeed())
		Expect(string(out)).To(Equal(pem))
	})

	It("tolerates a wrong size hint", func() {
		var out []byte
		Expect(stores.ReadAll(&out, 1, io.LimitReader(strings.NewReader("abcdef"), 4))).To(Succeed())
		Expect(string(out)).To(Equal("abcd"))
	})

	It("wraps read failures", func() {
		var out []byte
		err := stores.ReadAll(&out, 8, iotest.ErrReader(errors.New("connection reset")))
		Expect(err).To(MatchError(ContainSubstring("failed to read object")))
		Expect(out).To(BeNil())
	})
})
