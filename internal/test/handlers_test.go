package test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/DrGermanius/Zencoo/internal"
	mock_internal "github.com/DrGermanius/Zencoo/internal/mock"
	"github.com/DrGermanius/Zencoo/internal/model"
)

var _ = Describe("Handlers", func() {
	var (
		app   *fiber.App
		srv   *mock_internal.MockIService
		ctrl  *gomock.Controller
		token string
	)
	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		logger := newLogger()
		srv = mock_internal.NewMockIService(ctrl)

		app = fiber.New()
		app.Use(internal.CorrelationID())
		internal.NewHandlers(srv, logger).Routes(app, internal.NewAuthMiddleware("secret", logger))

		var err error
		token, err = internal.NewService(nil, nil, nil, "secret", logger).GetJWTToken("1")
		Expect(err).ShouldNot(HaveOccurred())
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	do := func(method, target, body string, authorized bool) *http.Response {
		var r io.Reader
		if body != "" {
			r = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, target, r)
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		if authorized {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := app.Test(req, -1)
		Expect(err).ShouldNot(HaveOccurred())
		return resp
	}

	Context("Auth", func() {
		It("Register sets the token", func() {
			srv.EXPECT().Register(gomock.Any(), gomock.Any()).Return("tok", nil)

			resp := do(http.MethodPost, "/api/auth/register", `{"email":"a@b.c","username":"a","password":"123456","fullName":"A","doorNumber":"1","community":"C"}`, false)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))
			Expect(resp.Header.Get("Set-Cookie")).Should(ContainSubstring("token=tok"))

			var out model.TokenOutput
			Expect(json.NewDecoder(resp.Body).Decode(&out)).Should(Succeed())
			Expect(out.Token).Should(Equal("tok"))
		})
		It("Register with conflict", func() {
			srv.EXPECT().Register(gomock.Any(), gomock.Any()).Return("", internal.ErrUsernameIsAlreadyTaken)

			resp := do(http.MethodPost, "/api/auth/register", `{"email":"a@b.c"}`, false)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusConflict))
		})
		It("Login with invalid credentials", func() {
			srv.EXPECT().Login(gomock.Any(), "a@b.c", "nope").Return("", internal.ErrInvalidCredentials)

			resp := do(http.MethodPost, "/api/auth/login", `{"email":"a@b.c","password":"nope"}`, false)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusUnauthorized))
		})
		It("CheckEmail", func() {
			srv.EXPECT().IsEmailRegistered(gomock.Any(), "a@b.c").Return(true, nil)

			resp := do(http.MethodGet, "/api/auth/check-email?email=a@b.c", "", false)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))

			var out map[string]bool
			Expect(json.NewDecoder(resp.Body).Decode(&out)).Should(Succeed())
			Expect(out["exists"]).Should(BeTrue())
		})
		It("CheckUsername without parameter", func() {
			resp := do(http.MethodGet, "/api/auth/check-username", "", false)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusBadRequest))
		})
	})

	Context("Orders", func() {
		It("requires a token", func() {
			resp := do(http.MethodGet, "/api/orders/received", "", false)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusUnauthorized))
		})
		It("GetReceivedOrders", func() {
			srv.EXPECT().GetReceivedOrders().Return([]model.ReceivedOrderOutput{{
				ReceivedOrder: receivedOrder("r-1", model.StatusPending, at(1)),
				Actions:       model.ReceivedActions(model.StatusPending),
			}})

			resp := do(http.MethodGet, "/api/orders/received", "", true)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))

			var out []map[string]interface{}
			Expect(json.NewDecoder(resp.Body).Decode(&out)).Should(Succeed())
			Expect(out).Should(HaveLen(1))
			Expect(out[0]["id"]).Should(Equal("r-1"))
			Expect(out[0]["status"]).Should(Equal("PENDING"))
			Expect(out[0]["actions"]).Should(Equal([]interface{}{"accept", "reject"}))
		})
		It("GetPlacedOrders with no orders", func() {
			srv.EXPECT().GetPlacedOrders().Return(nil)

			resp := do(http.MethodGet, "/api/orders/placed", "", true)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusNoContent))
		})
		It("accepts a received order", func() {
			srv.EXPECT().ApplyReceivedAction("r-1", model.ActionAccept).
				Return(receivedOrder("r-1", model.StatusAccepted, at(1)), nil)

			resp := do(http.MethodPost, "/api/orders/received/r-1/accept", "", true)
			Expect(resp.StatusCode).Should(Equal(fiber.StatusOK))

			var out map[string]interface{}
			Expect(json.NewDecoder(resp.Body).Decode(&out)).Should(Succeed())
			Expect(out["status"]).Should(Equal("ACCEPTED"))
		})
		It("maps store errors to statuses", func() {
			srv.EXPECT().ApplyReceivedAction("r-9", model.ActionAccept).Return(model.ReceivedOrder{}, internal.ErrOrderNotFound)
			srv.EXPECT().ApplyReceivedAction("r-2", model.ActionComplete).Return(model.ReceivedOrder{}, internal.ErrIllegalTransition)
			srv.EXPECT().ApplyReceivedAction("r-2", model.Action("ship")).Return(model.ReceivedOrder{}, internal.ErrUnknownAction)

			Expect(do(http.MethodPost, "/api/orders/received/r-9/accept", "", true).StatusCode).Should(Equal(fiber.StatusNotFound))
			Expect(do(http.MethodPost, "/api/orders/received/r-2/complete", "", true).StatusCode).Should(Equal(fiber.StatusConflict))
			Expect(do(http.MethodPost, "/api/orders/received/r-2/ship", "", true).StatusCode).Should(Equal(fiber.StatusBadRequest))
		})
		It("cancels a placed order only when confirmed", func() {
			confirmOrDecline := func(_ string, c internal.Confirmer) error {
				if !c.Confirm("") {
					return internal.ErrCancellationDeclined
				}
				return nil
			}
			srv.EXPECT().CancelPlacedOrder("p-1", gomock.Any()).DoAndReturn(confirmOrDecline).Times(2)

			Expect(do(http.MethodDelete, "/api/orders/placed/p-1", "", true).StatusCode).Should(Equal(fiber.StatusBadRequest))
			Expect(do(http.MethodDelete, "/api/orders/placed/p-1?confirm=true", "", true).StatusCode).Should(Equal(fiber.StatusNoContent))
		})
	})

	It("echoes the correlation id", func() {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/check-username", nil)
		req.Header.Set(internal.HeaderCorrelationID, "cid-1")

		resp, err := app.Test(req, -1)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(resp.Header.Get(internal.HeaderCorrelationID)).Should(Equal("cid-1"))
	})
	It("generates a correlation id", func() {
		resp := do(http.MethodGet, "/api/auth/check-username", "", false)
		Expect(resp.Header.Get(internal.HeaderCorrelationID)).ShouldNot(BeEmpty())
	})
})
