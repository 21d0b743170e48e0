package asyncdata_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ib-77/ropdata/pkg/rop/asyncdata"
)

type user struct {
	ID   int
	Name string
}

var _ = Describe("request lifecycle", func() {
	var (
		snapshot asyncdata.AsyncData[user, error]
		history  []asyncdata.Status
	)

	record := func(a asyncdata.AsyncData[user, error]) {
		snapshot = a
		history = append(history, a.Status())
	}

	BeforeEach(func() {
		history = nil
		record(asyncdata.NotAsked[user, error]())
	})

	It("starts not asked with nothing to read", func() {
		Expect(snapshot.IsLoaded()).To(BeFalse())
		Expect(snapshot.GetOptional().IsPresent()).To(BeFalse())

		_, err := snapshot.Value()
		Expect(err).To(MatchError(asyncdata.ErrNotReady))
	})

	It("moves through loading to success", func() {
		record(asyncdata.Loading[user, error]())
		Expect(snapshot.IsLoaded()).To(BeFalse())

		record(asyncdata.Loaded[user, error]([]user{{ID: 1, Name: "ann"}}))
		Expect(snapshot.IsLoaded()).To(BeTrue())

		u, err := snapshot.SingleValue()
		Expect(err).NotTo(HaveOccurred())
		Expect(u.Name).To(Equal("ann"))

		Expect(history).To(Equal([]asyncdata.Status{
			asyncdata.NotAskedStatus,
			asyncdata.LoadingStatus,
			asyncdata.SuccessStatus,
		}))
	})

	It("accepts repeated success snapshots for streamed pages", func() {
		record(asyncdata.Loading[user, error]())
		record(asyncdata.Loaded[user, error]([]user{{ID: 1}}))

		next, err := snapshot.Concat(user{ID: 2}, user{ID: 3})
		Expect(err).NotTo(HaveOccurred())
		record(next)

		ids, err := asyncdata.MapValue(snapshot, func(u user, _ int) int { return u.ID })
		Expect(err).NotTo(HaveOccurred())
		Expect(ids).To(Equal([]int{1, 2, 3}))
		Expect(history[len(history)-2:]).To(HaveEach(asyncdata.SuccessStatus))
	})

	It("moves through loading to failure", func() {
		boom := errors.New("connection reset")
		record(asyncdata.Loading[user, error]())
		record(asyncdata.Errored[user](boom))

		Expect(snapshot.IsLoaded()).To(BeTrue())
		Expect(snapshot.GetOptional().IsPresent()).To(BeFalse())

		reason, err := snapshot.Failure()
		Expect(err).NotTo(HaveOccurred())
		Expect(reason).To(MatchError(boom))

		_, err = snapshot.Find(func(u user, _ int) bool { return true })
		Expect(err).To(MatchError(asyncdata.ErrNotReady))
	})

	DescribeTable("transformations keep pending states",
		func(a asyncdata.AsyncData[user, error]) {
			names := asyncdata.Map(a, func(u user, _ int) string { return u.Name })
			Expect(names.Status()).To(Equal(a.Status()))
			Expect(a.Filter(func(user, int) bool { return true }).Status()).To(Equal(a.Status()))
			total := asyncdata.Reduce(a, func(acc int, u user, _ int) int { return acc + u.ID }, 0)
			Expect(total.Status()).To(Equal(a.Status()))
		},
		Entry("not asked", asyncdata.NotAsked[user, error]()),
		Entry("loading", asyncdata.Loading[user, error]()),
		Entry("failure", asyncdata.Errored[user](errors.New("x"))),
	)
})
