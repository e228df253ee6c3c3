// Package routes wires every HTTP endpoint to its controller.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/tradeport/app/controllers"
	"github.com/shashiranjanraj/tradeport/app/repositories"
	"github.com/shashiranjanraj/tradeport/app/services"
	"github.com/shashiranjanraj/tradeport/pkg/auth"
	"github.com/shashiranjanraj/tradeport/pkg/database"
	"github.com/shashiranjanraj/tradeport/pkg/metrics"
	"github.com/shashiranjanraj/tradeport/pkg/middleware"
	"github.com/shashiranjanraj/tradeport/pkg/router"
	"github.com/shashiranjanraj/tradeport/pkg/ws"
)

// Register builds the repository/service/controller graph and mounts every
// route on r. Call after database.Connect.
func Register(r *router.Router) {
	users := repositories.NewUserRepository(database.C(database.ColUsers))
	progress := repositories.NewProgressRepository(database.C(database.ColProfileProgress))
	profiles := repositories.NewProfileRepository(repositories.ProfileCollections{
		Business:  database.C(database.ColBusinessDetails),
		Contact:   database.C(database.ColContactDetails),
		Category:  database.C(database.ColCategoryBrands),
		Addresses: database.C(database.ColAddresses),
		Bank:      database.C(database.ColBankDetails),
		Documents: database.C(database.ColDocuments),
	})
	orders := repositories.NewOrderRepository(database.C(database.ColOrders))
	coupons := repositories.NewCouponRepository(database.C(database.ColCoupons))

	authSvc := services.NewAuthService(users)
	onboardingSvc := services.NewOnboardingService(progress, profiles, users)
	orderSvc := services.NewOrderService(orders)
	couponSvc := services.NewCouponService(coupons)

	authCtl := controllers.NewAuthController(authSvc, users)
	profileCtl := controllers.NewProfileController(onboardingSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	couponCtl := controllers.NewCouponController(couponSvc)
	uploadCtl := controllers.NewUploadController()

	// ─── Public ───
	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.HandleFunc("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Post("/auth/register", "auth.register", authCtl.Register)
	api.Post("/auth/login", "auth.login", authCtl.Login)
	api.Post("/auth/refresh", "auth.refresh", authCtl.Refresh)
	api.Post("/coupons/apply", "coupons.apply", couponCtl.Apply)

	// ─── Authenticated ───
	authed := api.Group("", middleware.Auth)
	authed.Get("/me", "auth.me", authCtl.Me)

	// ─── Seller ───
	seller := authed.Group("/seller", middleware.RequireActor(auth.ActorSeller))

	seller.Get("/profile", "seller.profile", profileCtl.Profile)
	seller.Get("/profile/progress", "seller.profile.progress", profileCtl.Progress)
	seller.Post("/profile/business", "seller.profile.business", profileCtl.SaveBusiness)
	seller.Post("/profile/contact", "seller.profile.contact", profileCtl.SaveContact)
	seller.Post("/profile/category", "seller.profile.category", profileCtl.SaveCategory)
	seller.Post("/profile/addresses", "seller.profile.addresses", profileCtl.SaveAddresses)
	seller.Post("/profile/bank", "seller.profile.bank", profileCtl.SaveBank)
	seller.Post("/profile/documents", "seller.profile.documents", profileCtl.SaveDocuments)
	seller.Post("/profile/documents/complete", "seller.profile.complete", profileCtl.CompleteWithDocuments)
	seller.Post("/profile/submit", "seller.profile.submit", profileCtl.Submit)
	seller.Post("/uploads/documents", "seller.uploads.documents", uploadCtl.Document)

	seller.Get("/orders", "seller.orders", orderCtl.List)
	seller.Get("/orders/{id}", "seller.orders.show", orderCtl.Get)
	seller.Get("/orders/{id}/next-statuses", "seller.orders.next", orderCtl.NextStatuses)
	seller.Patch("/orders/{id}/status", "seller.orders.status", orderCtl.UpdateStatus)

	// ─── Admin ───
	admin := authed.Group("/admin", middleware.RequireActor(auth.ActorAdmin))

	admin.Get("/sellers/submitted", "admin.sellers.submitted", profileCtl.ListSubmitted)
	admin.Get("/sellers/{id}/profile", "admin.sellers.profile", profileCtl.SellerProfile)
	admin.Post("/sellers/{id}/review", "admin.sellers.review", profileCtl.Review)

	admin.Get("/coupons", "admin.coupons", couponCtl.List)
	admin.Get("/coupons/{id}", "admin.coupons.show", couponCtl.Get)
	admin.Post("/coupons", "admin.coupons.create", couponCtl.Create)
	admin.Put("/coupons/{id}", "admin.coupons.update", couponCtl.Update)
	admin.Delete("/coupons/{id}", "admin.coupons.delete", couponCtl.Delete)

	// ─── Live order feed ───
	r.Get("/ws/orders", "ws.orders", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, ws.OrderFeed)
	})
}
