package routes

import (
	"net/http"
	"strings"

	"kathasales/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Handlers collects every handler the router needs.
type Handlers struct {
	User       *handlers.UserHandler
	Group      *handlers.GroupHandler
	Category   *handlers.CategoryHandler
	Item       *handlers.ItemHandler
	Purchase   *handlers.PurchaseHandler
	CashSale   *handlers.SaleHandler
	CreditSale *handlers.SaleHandler
	Chalan     *handlers.ChalanHandler
	Party      *handlers.PartyHandler
	Receipt    *handlers.VoucherHandler
	Payment    *handlers.VoucherHandler
	Expense    *handlers.ExpenseHandler
	Report     *handlers.ReportHandler
	Profile    *handlers.ProfileHandler
	Student    *handlers.StudentHandler
	PDF        *handlers.PDFHandler

	JWTSecret string
}

func register(path string, fn http.HandlerFunc) {
	http.Handle(path, withCORS(http.HandlerFunc(handlers.RecoverWrapper(fn))))
}

// crudByID dispatches GET/PUT/DELETE on /api/<entity>/{id} style paths.
func crudByID(prefix string,
	get func(http.ResponseWriter, *http.Request, string),
	put func(http.ResponseWriter, *http.Request, string),
	del func(http.ResponseWriter, *http.Request, string),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, prefix)
		if id == "" || strings.Contains(id, "/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			get(w, r, id)
		case http.MethodPut:
			put(w, r, id)
		case http.MethodDelete:
			del(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

// listCreate dispatches GET (list) and POST (create) on a collection path.
func listCreate(list, create http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			list(w, r)
		case http.MethodPost:
			create(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func SetupRoutes(h Handlers) {
	// Auth routes
	register("/api/auth/signup", h.User.Signup)
	register("/api/auth/login", h.User.Login)

	// Inventory groups
	register("/api/groups", listCreate(h.Group.ListGroups, h.Group.CreateGroup))
	register("/api/groups/", crudByID("/api/groups/",
		h.Group.GetGroupByID, h.Group.UpdateGroup, h.Group.DeleteGroup))

	// Categories
	register("/api/categories-next-number", h.Category.NextNumber)
	register("/api/categories", listCreate(h.Category.ListCategories, h.Category.CreateCategory))
	register("/api/categories/", crudByID("/api/categories/",
		h.Category.GetCategoryByID, h.Category.UpdateCategory, h.Category.DeleteCategory))

	// Items
	register("/api/items-max-code", h.Item.MaxCode)
	register("/api/items", listCreate(h.Item.ListItems, h.Item.CreateItem))
	register("/api/items/", crudByID("/api/items/",
		h.Item.GetItemByID, h.Item.UpdateItem, h.Item.DeleteItem))

	// Purchases and their lines
	register("/api/purchases", listCreate(h.Purchase.ListPurchases, h.Purchase.CreatePurchase))
	register("/api/purchases/", crudByID("/api/purchases/",
		h.Purchase.GetPurchaseByID, h.Purchase.UpdatePurchase, h.Purchase.DeletePurchase))
	register("/api/purchase-items", listCreate(h.Purchase.ListPurchaseItems, h.Purchase.CreatePurchaseItem))
	register("/api/purchase-items/", crudByID("/api/purchase-items/",
		h.Purchase.GetPurchaseItemByID, h.Purchase.UpdatePurchaseItem, h.Purchase.DeletePurchaseItem))

	// Cash sales
	register("/api/cashsales", listCreate(h.CashSale.ListSales, h.CashSale.CreateSale))
	register("/api/cashsales/", crudByID("/api/cashsales/",
		h.CashSale.GetSaleByID, h.CashSale.UpdateSale, h.CashSale.DeleteSale))
	register("/api/cashsale-items", listCreate(h.CashSale.ListSaleItems, h.CashSale.CreateSaleItem))
	register("/api/cashsale-items/", crudByID("/api/cashsale-items/",
		h.CashSale.GetSaleItemByID, h.CashSale.UpdateSaleItem, h.CashSale.DeleteSaleItem))

	// Credit sales
	register("/api/creditsales", listCreate(h.CreditSale.ListSales, h.CreditSale.CreateSale))
	register("/api/creditsales/", crudByID("/api/creditsales/",
		h.CreditSale.GetSaleByID, h.CreditSale.UpdateSale, h.CreditSale.DeleteSale))
	register("/api/creditsale-items", listCreate(h.CreditSale.ListSaleItems, h.CreditSale.CreateSaleItem))
	register("/api/creditsale-items/", crudByID("/api/creditsale-items/",
		h.CreditSale.GetSaleItemByID, h.CreditSale.UpdateSaleItem, h.CreditSale.DeleteSaleItem))

	// Delivery chalans
	register("/api/delivery-chalans", listCreate(h.Chalan.ListChalans, h.Chalan.CreateChalan))
	register("/api/delivery-chalans/", crudByID("/api/delivery-chalans/",
		h.Chalan.GetChalanByID, h.Chalan.UpdateChalan, h.Chalan.DeleteChalan))
	register("/api/delivery-chalan-items", listCreate(h.Chalan.ListChalanItems, h.Chalan.CreateChalanItem))
	register("/api/delivery-chalan-items/", crudByID("/api/delivery-chalan-items/",
		h.Chalan.GetChalanItemByID, h.Chalan.UpdateChalanItem, h.Chalan.DeleteChalanItem))

	// Parties; /api/parties/{id}/ledger serves the running-balance statement
	register("/api/parties", listCreate(h.Party.ListParties, h.Party.CreateParty))
	register("/api/parties/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/parties/")
		if id, ok := strings.CutSuffix(rest, "/ledger"); ok && id != "" {
			if r.Method != http.MethodGet {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			h.Party.PartyLedger(w, r, id)
			return
		}
		crudByID("/api/parties/",
			h.Party.GetPartyByID, h.Party.UpdateParty, h.Party.DeleteParty)(w, r)
	})

	// Receipts and payments
	register("/api/receipts", listCreate(h.Receipt.ListVouchers, h.Receipt.CreateVoucher))
	register("/api/receipts/", crudByID("/api/receipts/",
		h.Receipt.GetVoucherByID, h.Receipt.UpdateVoucher, h.Receipt.DeleteVoucher))
	register("/api/payments", listCreate(h.Payment.ListVouchers, h.Payment.CreateVoucher))
	register("/api/payments/", crudByID("/api/payments/",
		h.Payment.GetVoucherByID, h.Payment.UpdateVoucher, h.Payment.DeleteVoucher))

	// Expenses
	register("/api/expenses", listCreate(h.Expense.ListExpenses, h.Expense.CreateExpense))
	register("/api/expenses/", crudByID("/api/expenses/",
		h.Expense.GetExpenseByID, h.Expense.UpdateExpense, h.Expense.DeleteExpense))

	// Reports
	register("/api/reports/item-transactions", h.Report.ItemTransactions)

	// Company profile
	register("/api/company-profile", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			h.Profile.GetProfile(w, r)
		case http.MethodPost:
			h.Profile.SaveProfile(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Invoice PDF
	register("/api/invoices/pdf", h.PDF.InvoicePDF)

	// School module, token protected
	if h.Student != nil {
		register("/api/students", handlers.RequireAuth(h.JWTSecret,
			listCreate(h.Student.ListStudents, h.Student.CreateStudent)))
		register("/api/students/", handlers.RequireAuth(h.JWTSecret, func(w http.ResponseWriter, r *http.Request) {
			rest := strings.TrimPrefix(r.URL.Path, "/api/students/")
			if id, ok := strings.CutSuffix(rest, "/fee-payments"); ok && id != "" {
				if r.Method != http.MethodPost {
					w.WriteHeader(http.StatusMethodNotAllowed)
					return
				}
				h.Student.AddFeePayment(w, r, id)
				return
			}
			crudByID("/api/students/",
				h.Student.GetStudentByID, h.Student.UpdateStudent, h.Student.DeleteStudent)(w, r)
		}))
	}
}
