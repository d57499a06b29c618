package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/lagertest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Fugacious", func() {
	var (
		header   int
		received map[string]map[string]interface{}
		server   *httptest.Server
		sender   *FugaciousCredentialSender
	)

	BeforeEach(func() {
		received = nil
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer GinkgoRecover()
			Expect(r.Method).To(Equal(http.MethodPost))
			Expect(r.URL.Path).To(Equal("/m"))
			Expect(json.NewDecoder(r.Body).Decode(&received)).To(Succeed())

			w.Header().Set("Location", "https://fugacio.us/m/42")
			w.WriteHeader(header)
		}))
		sender = NewFugaciousCredentialSender(lagertest.NewTestLogger("fugacious-test"), server.URL, 24, 4)
	})

	AfterEach(func() {
		server.Close()
	})

	Context("when the status code is expected", func() {
		BeforeEach(func() {
			header = http.StatusFound
		})

		It("retrieves a link from the fugacious server", func() {
			url, err := sender.Send(context.Background(), "testing")
			Expect(err).NotTo(HaveOccurred())
			Expect(url).To(Equal("https://fugacio.us/m/42"))
		})

		It("sends the message with its expiry", func() {
			_, err := sender.Send(context.Background(), "testing")
			Expect(err).NotTo(HaveOccurred())
			Expect(received["message"]).To(Equal(map[string]interface{}{
				"body":      "testing",
				"hours":     24.0,
				"max_views": 4.0,
			}))
		})
	})

	Context("when the status code is unexpected", func() {
		BeforeEach(func() {
			header = http.StatusNotFound
		})

		It("complains about the response status", func() {
			_, err := sender.Send(context.Background(), "testing")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Expected status"))
		})
	})

	It("stops when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := sender.Send(ctx, "testing")
		Expect(err).To(MatchError(ContainSubstring("context canceled")))
	})
})
