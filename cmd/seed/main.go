package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"ai-procurement-be/internal/model"
	"ai-procurement-be/pkg/database"
	"ai-procurement-be/pkg/keywords"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type documentFixture struct {
	Name        string
	Type        string
	Size        int64
	Supplier    string
	Description string
}

type supplierFixture struct {
	Name   string
	Sector string
	Email  string
	Phone  string
	City   string
	Rating float64
	Tags   []string
}

// The document fixture holds 21 entries, five of which are invoices,
// so the list filters have realistic data to chew on.
var documentFixtures = []documentFixture{
	{"Invoice_2024_001.pdf", "pdf", 245760, "Acme Corp", "January invoice for machined brackets"},
	{"Invoice_Acme_Corp_2024.pdf", "pdf", 189440, "Acme Corp", "Annual framework invoice"},
	{"Invoice_Office_Supplies.pdf", "pdf", 156672, "Staples Direct", "Monthly office supplies restock"},
	{"Invoice_Consulting_Services.pdf", "pdf", 203776, "McKinley Advisors", "Sourcing strategy engagement, phase 2"},
	{"Invoice_Maintenance_Contract.pdf", "pdf", 312320, "FixIt Industrial", "Preventive maintenance retainer"},
	{"Purchase_Order_Q1_2024.pdf", "pdf", 98304, "Acme Corp", "Q1 blanket order"},
	{"Purchase_Order_Q2_2024.pdf", "pdf", 102400, "Global Parts Ltd", "Q2 blanket order"},
	{"Supplier_Agreement_Acme.docx", "docx", 45056, "Acme Corp", "Master supply agreement, signed"},
	{"Supplier_Agreement_GlobalParts.docx", "docx", 51200, "Global Parts Ltd", "Master supply agreement, draft"},
	{"RFQ_Steel_Components.docx", "docx", 38912, "Global Parts Ltd", "Request for quote on steel components"},
	{"RFQ_Electrical_Fittings.docx", "docx", 40960, "Voltman Electric", "Request for quote on fittings"},
	{"Quarterly_Spend_Report.xlsx", "xlsx", 524288, "", "Spend by category and supplier"},
	{"Supplier_Scorecard_2024.xlsx", "xlsx", 471040, "", "Delivery and quality scorecard"},
	{"Inventory_Levels_March.xlsx", "xlsx", 389120, "", "Warehouse stock snapshot"},
	{"Price_Comparison_Logistics.xlsx", "xlsx", 296960, "SwiftHaul Logistics", "Freight rate comparison"},
	{"Delivery_Schedule_April.csv", "csv", 20480, "SwiftHaul Logistics", "April inbound deliveries"},
	{"Supplier_Contact_List.csv", "csv", 16384, "", "Contact export from CRM"},
	{"Contract_Renewal_Notes.txt", "txt", 8192, "FixIt Industrial", "Notes from renewal call"},
	{"Negotiation_Summary_Voltman.txt", "txt", 12288, "Voltman Electric", "Pricing negotiation summary"},
	{"Compliance_Checklist_2024.pdf", "pdf", 167936, "", "Supplier onboarding checklist"},
	{"Warranty_Terms_FixIt.pdf", "pdf", 143360, "FixIt Industrial", "Extended warranty terms"},
}

var supplierFixtures = []supplierFixture{
	{"Acme Corp", "Manufacturing", "sales@acmecorp.com", "+1-555-0101", "Detroit", 4.5, []string{"preferred", "net-30"}},
	{"Global Parts Ltd", "Manufacturing", "orders@globalparts.co.uk", "+44-20-7946-0958", "Birmingham", 4.0, []string{"international"}},
	{"Staples Direct", "Office Supplies", "b2b@staplesdirect.com", "+1-555-0134", "Boston", 3.5, []string{"net-60"}},
	{"McKinley Advisors", "Consulting", "engage@mckinleyadvisors.com", "+1-555-0177", "Chicago", 4.8, []string{"preferred", "services"}},
	{"FixIt Industrial", "Maintenance", "support@fixitindustrial.com", "+1-555-0190", "Cleveland", 3.8, []string{"on-call"}},
	{"Voltman Electric", "Electrical", "quotes@voltman.io", "+1-555-0155", "Austin", 4.2, []string{"certified"}},
	{"SwiftHaul Logistics", "Logistics", "dispatch@swifthaul.com", "+1-555-0112", "Memphis", 3.9, []string{"freight", "net-30"}},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding demo workspace...")

	userId, err := seedDemoUser(db)
	if err != nil {
		color.Red("Error: Failed to seed demo user: %v", err)
		os.Exit(1)
	}

	seedDocuments(db, userId)
	seedSuppliers(db, userId)

	color.Green("✅ Seeding completed")
}

func seedDemoUser(db *gorm.DB) (uuid.UUID, error) {
	const demoEmail = "demo@procurement.local"

	var existing model.User
	if err := db.Where("email = ?", demoEmail).First(&existing).Error; err == nil {
		color.Yellow("Demo user already exists, reusing %s", existing.Id)
		return existing.Id, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return uuid.Nil, err
	}
	hashStr := string(hash)

	user := model.User{
		Id:           uuid.New(),
		Email:        demoEmail,
		PasswordHash: &hashStr,
		FullName:     "Demo Buyer",
		Role:         "user",
	}
	if err := db.Create(&user).Error; err != nil {
		return uuid.Nil, err
	}

	profile := model.Profile{
		Id:        uuid.New(),
		UserId:    user.Id,
		Firstname: "Demo",
		Lastname:  "Buyer",
		Role:      "user",
	}
	if err := db.Create(&profile).Error; err != nil {
		return uuid.Nil, err
	}

	color.Green("Created demo user %s (password: password123)", demoEmail)
	return user.Id, nil
}

func seedDocuments(db *gorm.DB, userId uuid.UUID) {
	uploadBase := time.Now().AddDate(0, -3, 0)

	for i, f := range documentFixtures {
		var existing model.Document
		if err := db.Where("user_id = ? AND name = ?", userId, f.Name).First(&existing).Error; err == nil {
			color.Yellow("Document '%s' already exists, skipping...", f.Name)
			continue
		}

		doc := model.Document{
			Id:          uuid.New(),
			UserId:      userId,
			Name:        f.Name,
			Type:        f.Type,
			Size:        f.Size,
			Status:      "ready",
			Supplier:    f.Supplier,
			Description: f.Description,
			StoragePath: "uploads/demo/" + f.Name,
			Keywords:    keywords.Extract(f.Name, f.Description, f.Supplier),
			UploadDate:  uploadBase.AddDate(0, 0, i*4),
		}
		if err := db.Create(&doc).Error; err != nil {
			color.Red("Error creating document '%s': %v", f.Name, err)
		} else {
			color.Green("Created document: %s", f.Name)
		}
	}
}

func seedSuppliers(db *gorm.DB, userId uuid.UUID) {
	for _, f := range supplierFixtures {
		var existing model.Supplier
		if err := db.Where("user_id = ? AND name = ?", userId, f.Name).First(&existing).Error; err == nil {
			color.Yellow("Supplier '%s' already exists, skipping...", f.Name)
			continue
		}

		tags, _ := json.Marshal(f.Tags)

		supplier := model.Supplier{
			Id:           uuid.New(),
			UserId:       userId,
			Name:         f.Name,
			Sector:       f.Sector,
			ContactEmail: f.Email,
			Phone:        f.Phone,
			City:         f.City,
			Rating:       f.Rating,
			Tags:         datatypes.JSON(tags),
			Status:       "active",
		}
		if err := db.Create(&supplier).Error; err != nil {
			color.Red("Error creating supplier '%s': %v", f.Name, err)
		} else {
			color.Green("Created supplier: %s", f.Name)
		}
	}
}
