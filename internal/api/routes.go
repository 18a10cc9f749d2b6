package api

import (
	"github.com/go-chi/chi/v5"
)

// setupAPIRoutes sets up API v1 routes
func (s *RESTServer) setupAPIRoutes(r chi.Router) {
	// Health check
	r.Get("/health", s.HandleHealth)
	r.Get("/", s.HandleRoot)

	// Auth routes (public)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.HandleLogin)
		r.Post("/refresh", s.HandleRefresh)
	})

	// Admin routes (registry level)
	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)
		r.Use(s.adminMiddleware)

		r.Route("/tenants", func(r chi.Router) {
			r.Get("/", s.HandleListTenants)
			r.Post("/", s.HandleCreateTenant)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.HandleGetTenant)
				r.Put("/", s.HandleUpdateTenant)
				r.Delete("/", s.HandleDeleteTenant)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", s.HandleListUsers)
			r.Post("/", s.HandleCreateUser)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.HandleGetUser)
				r.Delete("/", s.HandleDeleteUser)
			})
		})

		r.Route("/plans", func(r chi.Router) {
			r.Get("/", s.HandleListPlans)
			r.Post("/", s.HandleCreatePlan)
			r.Get("/{id}", s.HandleGetPlan)
		})

		r.Route("/business-types", func(r chi.Router) {
			r.Get("/", s.HandleListBusinessTypes)
			r.Post("/", s.HandleCreateBusinessType)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.HandleGetBusinessType)
				r.Put("/", s.HandleUpdateBusinessType)
				r.Delete("/", s.HandleDeleteBusinessType)
			})
		})

		r.Route("/field-requests", func(r chi.Router) {
			r.Get("/", s.HandleListFieldRequests)
			r.Post("/{id}/approve", s.HandleApproveFieldRequest)
			r.Post("/{id}/reject", s.HandleRejectFieldRequest)
		})
	})

	// Tenant-scoped routes; tenant identity comes from JWT claims
	r.Group(func(r chi.Router) {
		r.Use(s.authMiddleware)

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.HandleListProducts)
			r.Post("/", s.HandleCreateProduct)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.HandleGetProduct)
				r.Put("/", s.HandleUpdateProduct)
				r.Delete("/", s.HandleDeleteProduct)
			})
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", s.HandleListCustomers)
			r.Post("/", s.HandleCreateCustomer)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.HandleGetCustomer)
				r.Put("/", s.HandleUpdateCustomer)
				r.Delete("/", s.HandleDeleteCustomer)
			})
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", s.HandleListSales)
			r.Post("/", s.HandleCreateSale)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.HandleGetSale)
				r.Delete("/", s.HandleDeleteSale)
			})
		})

		r.Route("/purchases", func(r chi.Router) {
			r.Get("/", s.HandleListPurchases)
			r.Post("/", s.HandleCreatePurchase)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.HandleGetPurchase)
				r.Delete("/", s.HandleDeletePurchase)
			})
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", s.HandleListEmployees)
			r.Post("/", s.HandleCreateEmployee)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.HandleGetEmployee)
				r.Put("/", s.HandleUpdateEmployee)
				r.Delete("/", s.HandleDeleteEmployee)
			})
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", s.HandleListLeaves)
			r.Post("/", s.HandleCreateLeave)
			r.Put("/{id}/status", s.HandleUpdateLeaveStatus)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", s.HandleListExpenses)
			r.Post("/", s.HandleCreateExpense)
			r.Delete("/{id}", s.HandleDeleteExpense)
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", s.HandleGetSettings)
			r.Put("/", s.HandleUpdateSettings)
		})

		r.Route("/fields", func(r chi.Router) {
			r.Get("/", s.HandleGetFields)
			r.Post("/requests", s.HandleCreateFieldRequest)
		})

		r.Route("/dropdowns", func(r chi.Router) {
			r.Get("/", s.HandleListDropdowns)
			r.Put("/{name}", s.HandleUpdateDropdown)
		})
	})
}
