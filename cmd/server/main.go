package main

import (
	"fmt"
	"log"
	"net/http"

	"kathasales/config"
	"kathasales/db"
	"kathasales/db/mongo"
	"kathasales/db/postgres"
	"kathasales/handlers"
	"kathasales/models"
	"kathasales/repository"
	"kathasales/routes"
)

func main() {
	cfg := config.LoadConfig()

	if err := db.RunMigrations(cfg.PostgresURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	pg := postgres.NewPostgresDB(cfg.PostgresURL)
	if err := pg.Connect(); err != nil {
		panic(err)
	}
	defer pg.Disconnect()

	cashSaleRepo := repository.NewPostgresSaleRepo(pg.Conn, models.SaleCash)
	creditSaleRepo := repository.NewPostgresSaleRepo(pg.Conn, models.SaleCredit)
	profileRepo := repository.NewPostgresProfileRepo(pg.Conn)

	h := routes.Handlers{
		User:       &handlers.UserHandler{Repo: repository.NewPostgresUserRepo(pg.Conn), JWTSecret: cfg.JWTSecret},
		Group:      &handlers.GroupHandler{Repo: repository.NewPostgresGroupRepo(pg.Conn)},
		Category:   &handlers.CategoryHandler{Repo: repository.NewPostgresCategoryRepo(pg.Conn)},
		Item:       &handlers.ItemHandler{Repo: repository.NewPostgresItemRepo(pg.Conn)},
		Purchase:   &handlers.PurchaseHandler{Repo: repository.NewPostgresPurchaseRepo(pg.Conn)},
		CashSale:   &handlers.SaleHandler{Repo: cashSaleRepo},
		CreditSale: &handlers.SaleHandler{Repo: creditSaleRepo},
		Chalan:     &handlers.ChalanHandler{Repo: repository.NewPostgresChalanRepo(pg.Conn)},
		Party:      &handlers.PartyHandler{Repo: repository.NewPostgresPartyRepo(pg.Conn)},
		Receipt:    &handlers.VoucherHandler{Repo: repository.NewPostgresVoucherRepo(pg.Conn, models.VoucherReceipt), Kind: models.VoucherReceipt},
		Payment:    &handlers.VoucherHandler{Repo: repository.NewPostgresVoucherRepo(pg.Conn, models.VoucherPayment), Kind: models.VoucherPayment},
		Expense:    &handlers.ExpenseHandler{Repo: repository.NewPostgresExpenseRepo(pg.Conn)},
		Report:     &handlers.ReportHandler{Repo: repository.NewPostgresReportRepo(pg.Conn)},
		Profile:    &handlers.ProfileHandler{Repo: profileRepo},
		PDF: &handlers.PDFHandler{
			Repo:     repository.NewPDFRepository(cashSaleRepo, creditSaleRepo, profileRepo),
			SavePath: cfg.PDFSavePath,
		},
		JWTSecret: cfg.JWTSecret,
	}

	// The school module lives in Mongo and only comes up when configured.
	if cfg.MongoURL != "" {
		mg := mongo.NewMongoDB(cfg.MongoURL, cfg.MongoTimeout)
		if err := mg.Connect(); err != nil {
			panic(err)
		}
		defer mg.Disconnect()

		h.Student = &handlers.StudentHandler{Repo: repository.NewMongoStudentRepo(mg.Client)}
	}

	routes.SetupRoutes(h)

	port := cfg.Port
	fmt.Printf("Server running on port %s\n", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		panic(err)
	}
}
