package test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/Zencoo/internal"
	"github.com/DrGermanius/Zencoo/internal/model"
)

var _ = Describe("Projections", func() {
	It("puts pending first, then accepted, then the rest", func() {
		orders := []model.ReceivedOrder{
			receivedOrder("o-1", model.StatusCompleted, at(1)),
			receivedOrder("o-2", model.StatusPending, at(2)),
			receivedOrder("o-3", model.StatusAccepted, at(3)),
			receivedOrder("o-4", model.StatusPending, at(4)),
		}

		Expect(receivedIDs(internal.ProjectReceived(orders))).Should(Equal([]string{"o-4", "o-2", "o-3", "o-1"}))
	})
	It("orders terminal statuses by receivedAt only", func() {
		orders := []model.ReceivedOrder{
			receivedOrder("o-1", model.StatusRejected, at(1)),
			receivedOrder("o-2", model.StatusCancelled, at(3)),
			receivedOrder("o-3", model.StatusCompleted, at(2)),
		}

		Expect(receivedIDs(internal.ProjectReceived(orders))).Should(Equal([]string{"o-2", "o-3", "o-1"}))
	})
	It("is idempotent and leaves its input alone", func() {
		orders := []model.ReceivedOrder{
			receivedOrder("o-1", model.StatusAccepted, at(1)),
			receivedOrder("o-2", model.StatusPending, at(1)),
			receivedOrder("o-3", model.StatusPending, at(1)),
		}

		first := internal.ProjectReceived(orders)
		second := internal.ProjectReceived(orders)
		Expect(second).Should(Equal(first))
		Expect(receivedIDs(first)).Should(Equal([]string{"o-2", "o-3", "o-1"}))
		Expect(receivedIDs(orders)).Should(Equal([]string{"o-1", "o-2", "o-3"}))
	})
	It("sorts placed orders newest first and keeps ties stable", func() {
		orders := []model.PlacedOrder{
			placedOrder("p-1", model.StatusPending, at(1)),
			placedOrder("p-2", model.StatusPending, at(5)),
			placedOrder("p-3", model.StatusCompleted, at(3)),
			placedOrder("p-4", model.StatusPending, at(5)),
		}

		Expect(placedIDs(internal.ProjectPlaced(orders))).Should(Equal([]string{"p-2", "p-4", "p-3", "p-1"}))
		Expect(placedIDs(orders)).Should(Equal([]string{"p-1", "p-2", "p-3", "p-4"}))
	})
	It("handles empty input", func() {
		Expect(internal.ProjectPlaced(nil)).Should(BeEmpty())
		Expect(internal.ProjectReceived(nil)).Should(BeEmpty())
	})
})

var _ = Describe("Views", func() {
	var (
		store    *internal.OrderStore
		placed   *internal.PlacedView
		received *internal.ReceivedView
		yes      = internal.ConfirmFunc(func(string) bool { return true })
		no       = internal.ConfirmFunc(func(string) bool { return false })
	)
	BeforeEach(func() {
		var err error
		logger := newLogger()
		store, err = internal.NewOrderStore(
			[]model.PlacedOrder{
				placedOrder("p-1", model.StatusPending, at(1)),
				placedOrder("p-2", model.StatusCompleted, at(2)),
				placedOrder("p-3", model.StatusPending, at(3)),
			},
			[]model.ReceivedOrder{
				receivedOrder("r-1", model.StatusPending, at(1)),
				receivedOrder("r-2", model.StatusAccepted, at(2)),
				receivedOrder("r-3", model.StatusPending, at(3)),
			},
			logger,
		)
		Expect(err).ShouldNot(HaveOccurred())

		placed = internal.NewPlacedView(store, logger)
		received = internal.NewReceivedView(store, logger)
	})

	Context("ReceivedView", func() {
		It("re-derives after every action", func() {
			Expect(receivedIDs(received.Orders())).Should(Equal([]string{"r-3", "r-1", "r-2"}))

			Expect(received.Accept("r-3")).Should(Succeed())
			Expect(receivedIDs(received.Orders())).Should(Equal([]string{"r-1", "r-3", "r-2"}))

			Expect(received.Reject("r-1")).Should(Succeed())
			Expect(receivedIDs(received.Orders())).Should(Equal([]string{"r-3", "r-2", "r-1"}))

			Expect(received.Complete("r-3")).Should(Succeed())
			Expect(received.Cancel("r-2")).Should(Succeed())
			Expect(receivedIDs(received.Orders())).Should(Equal([]string{"r-3", "r-2", "r-1"}))
			Expect(receivedStatuses(received.Orders())).Should(Equal(map[string]model.Status{
				"r-1": model.StatusRejected,
				"r-2": model.StatusCancelled,
				"r-3": model.StatusCompleted,
			}))
		})
		It("applies actions by name", func() {
			o, err := received.Apply("r-1", model.ActionAccept)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(o.Status).Should(Equal(model.StatusAccepted))
		})
		It("rejects unknown actions", func() {
			_, err := received.Apply("r-1", "ship")
			Expect(err).Should(MatchError(internal.ErrUnknownAction))
		})
		It("offers the actions of each status", func() {
			out := received.Output()
			Expect(out).Should(HaveLen(3))
			Expect(out[0].Actions).Should(Equal([]model.Action{model.ActionAccept, model.ActionReject}))
			Expect(out[2].Actions).Should(Equal([]model.Action{model.ActionComplete, model.ActionCancel}))

			Expect(received.Complete("r-2")).Should(Succeed())
			for _, o := range received.Output() {
				if o.ID == "r-2" {
					Expect(o.Actions).Should(BeEmpty())
				}
			}
		})
	})

	Context("PlacedView", func() {
		It("cancels a confirmed pending order", func() {
			Expect(placedIDs(placed.Orders())).Should(Equal([]string{"p-3", "p-2", "p-1"}))

			Expect(placed.Cancel("p-3", yes)).Should(Succeed())
			Expect(placedIDs(placed.Orders())).Should(Equal([]string{"p-2", "p-1"}))
		})
		It("keeps the order when the prompt is declined", func() {
			err := placed.Cancel("p-3", no)
			Expect(err).Should(MatchError(internal.ErrCancellationDeclined))
			Expect(placed.Orders()).Should(HaveLen(3))
		})
		It("asks the cancellation question", func() {
			var asked string
			_ = placed.Cancel("p-1", internal.ConfirmFunc(func(prompt string) bool {
				asked = prompt
				return false
			}))
			Expect(asked).Should(Equal("Are you sure you want to cancel this order?"))
		})
		It("marks only pending orders cancellable", func() {
			for _, o := range placed.Output() {
				Expect(o.Cancellable).Should(Equal(o.Status == model.StatusPending))
			}
		})
	})
})
