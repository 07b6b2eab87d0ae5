package cache_test

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"sink-schema-server/internal/infra/cache"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Cache", func() {
	var (
		cacheInstance cache.Cache
		ctx           context.Context
	)

	BeforeEach(func() {
		var err error
		cacheInstance, err = cache.New(nil)
		Expect(err).NotTo(HaveOccurred())
		ctx = context.Background()
	})

	Context("Set and Get", func() {
		It("should return a stored value", func() {
			Expect(cacheInstance.Set(ctx, "table-columns:TDSQLPOSTGRESQL:en", []string{"jdbcUrl"}, 0)).To(BeTrue())

			value, found := cacheInstance.Get(ctx, "table-columns:TDSQLPOSTGRESQL:en")
			Expect(found).To(BeTrue())
			Expect(value).To(Equal([]string{"jdbcUrl"}))
		})

		It("should expire values after their TTL", func() {
			cacheInstance.Set(ctx, "short-lived", "value", 50*time.Millisecond)

			Eventually(func() bool {
				_, found := cacheInstance.Get(ctx, "short-lived")
				return found
			}).WithTimeout(2 * time.Second).WithPolling(20 * time.Millisecond).Should(BeFalse())
		})

		It("should miss with a cancelled context", func() {
			cacheInstance.Set(ctx, "key", "value", 0)

			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			_, found := cacheInstance.Get(cancelled, "key")
			Expect(found).To(BeFalse())
		})
	})

	Context("GetOrSet", func() {
		When("the key is missing", func() {
			It("should load once and serve the cached value afterwards", func() {
				var calls atomic.Int32
				loader := func() (any, error) {
					calls.Add(1)
					return "loaded", nil
				}

				first, err := cacheInstance.GetOrSet(ctx, "key", time.Minute, loader)
				Expect(err).NotTo(HaveOccurred())
				second, err := cacheInstance.GetOrSet(ctx, "key", time.Minute, loader)
				Expect(err).NotTo(HaveOccurred())

				Expect(first).To(Equal("loaded"))
				Expect(second).To(Equal("loaded"))
				Expect(calls.Load()).To(Equal(int32(1)))
			})
		})

		When("the loader fails", func() {
			It("should return the error and cache nothing", func() {
				loadErr := errors.New("boom")
				_, err := cacheInstance.GetOrSet(ctx, "key", time.Minute, func() (any, error) {
					return nil, loadErr
				})
				Expect(err).To(MatchError(loadErr))

				_, found := cacheInstance.Get(ctx, "key")
				Expect(found).To(BeFalse())
			})
		})

		When("the context is cancelled", func() {
			It("should not call the loader", func() {
				cancelled, cancel := context.WithCancel(ctx)
				cancel()

				_, err := cacheInstance.GetOrSet(cancelled, "key", time.Minute, func() (any, error) {
					Fail("loader should not be called with cancelled context")
					return nil, nil
				})
				Expect(err).To(MatchError(context.Canceled))
			})
		})

		When("called concurrently", func() {
			It("should hand every caller the same value", func() {
				const callers = 10
				results := make(chan any, callers)

				for i := 0; i < callers; i++ {
					go func() {
						defer GinkgoRecover()
						value, err := cacheInstance.GetOrSet(ctx, "concurrent", time.Minute, func() (any, error) {
							time.Sleep(10 * time.Millisecond)
							return "value", nil
						})
						Expect(err).NotTo(HaveOccurred())
						results <- value
					}()
				}

				for i := 0; i < callers; i++ {
					Eventually(results).Should(Receive(Equal("value")))
				}
			})
		})
	})
})
