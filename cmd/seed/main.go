package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sarayacafe/menu-backend/pkg/config"
	"github.com/sarayacafe/menu-backend/pkg/db"
	"github.com/sarayacafe/menu-backend/pkg/db/models"
	dbtypes "github.com/sarayacafe/menu-backend/pkg/db/types"
	"github.com/sarayacafe/menu-backend/pkg/enums"
	"github.com/sarayacafe/menu-backend/pkg/logger"
	"github.com/sarayacafe/menu-backend/pkg/security"
)

// seed bootstraps the first super-admin account and, with -demo, a small
// bilingual menu so a fresh environment is usable immediately. Every write is
// an upsert keyed on a natural identifier (email or name_en), so the command
// is safe to run repeatedly.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	email := flag.String("email", "admin@saraya.com", "super admin email")
	password := flag.String("password", "", "super admin password (required on first run)")
	demo := flag.Bool("demo", false, "also seed a demo bilingual menu")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(ctx, "failed to close database", err)
		}
	}()

	admin, err := ensureSuperAdmin(ctx, dbClient.DB(), cfg, *email, *password)
	if err != nil {
		logg.Error(ctx, "failed to seed super admin", err)
		os.Exit(1)
	}
	logg.Info(logg.WithFields(ctx, map[string]any{"email": admin.Email}), "super admin ready")

	if *demo {
		if err := seedDemoMenu(ctx, dbClient.DB(), admin.ID); err != nil {
			logg.Error(ctx, "failed to seed demo menu", err)
			os.Exit(1)
		}
		logg.Info(ctx, "demo menu ready")
	}

	logg.Info(ctx, "seeding complete")
}

// ensureSuperAdmin upserts the bootstrap account. An existing account is left
// untouched (including its password) so re-running the seed never locks out a
// rotated credential.
func ensureSuperAdmin(ctx context.Context, gdb *gorm.DB, cfg *config.Config, email, password string) (*models.User, error) {
	var existing models.User
	err := gdb.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if password == "" {
		return nil, fmt.Errorf("no user %s exists and -password was not provided", email)
	}

	hash, err := security.HashPassword(password, cfg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:     email,
		Password:  hash,
		FirstName: "الســـرايــا",
		LastName:  "Admin",
		Role:      enums.UserRoleSuperAdmin,
		IsActive:  true,
	}
	if err := gdb.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type demoProduct struct {
	nameEn        string
	nameAr        string
	descriptionEn string
	descriptionAr string
	basePrice     string
	featured      bool
	prepTime      string
	ingredientsEn []string
	ingredientsAr []string
	allergens     []string
	nutrition     map[string]any
	variations    []demoVariation
}

type demoVariation struct {
	nameEn    string
	nameAr    string
	varType   enums.VariationType
	modifier  string
	isDefault bool
	sortOrder int
}

type demoCategory struct {
	nameEn        string
	nameAr        string
	descriptionEn string
	descriptionAr string
	sortOrder     int
	products      []demoProduct
}

func sizeVariations() []demoVariation {
	return []demoVariation{
		{nameEn: "Small", nameAr: "صغير", varType: enums.VariationTypeSize, modifier: "0", isDefault: true, sortOrder: 1},
		{nameEn: "Medium", nameAr: "وسط", varType: enums.VariationTypeSize, modifier: "2.50", sortOrder: 2},
		{nameEn: "Large", nameAr: "كبير", varType: enums.VariationTypeSize, modifier: "4.50", sortOrder: 3},
	}
}

func temperatureVariations(defaultIced bool) []demoVariation {
	return []demoVariation{
		{nameEn: "Hot", nameAr: "ساخن", varType: enums.VariationTypeTemperature, modifier: "0", isDefault: !defaultIced, sortOrder: 1},
		{nameEn: "Iced", nameAr: "مثلج", varType: enums.VariationTypeTemperature, modifier: "0", isDefault: defaultIced, sortOrder: 2},
	}
}

func sweetnessVariations() []demoVariation {
	return []demoVariation{
		{nameEn: "No Sugar", nameAr: "بدون سكر", varType: enums.VariationTypeSweetness, modifier: "0", sortOrder: 1},
		{nameEn: "Light Sweet", nameAr: "سكر خفيف", varType: enums.VariationTypeSweetness, modifier: "0", isDefault: true, sortOrder: 2},
		{nameEn: "Regular Sweet", nameAr: "سكر عادي", varType: enums.VariationTypeSweetness, modifier: "0", sortOrder: 3},
		{nameEn: "Extra Sweet", nameAr: "سكر زيادة", varType: enums.VariationTypeSweetness, modifier: "0.50", sortOrder: 4},
	}
}

func demoMenu() []demoCategory {
	return []demoCategory{
		{
			nameEn:        "Traditional Coffee",
			nameAr:        "القهوة التراثية",
			descriptionEn: "Authentic Arabic coffee blends with rich heritage flavors",
			descriptionAr: "خلطات قهوة عربية أصيلة بنكهات تراثية غنية",
			sortOrder:     1,
			products: []demoProduct{
				{
					nameEn:        "Qahwa Arabica",
					nameAr:        "قهوة عربيكا",
					descriptionEn: "Traditional Arabic coffee with cardamom and saffron, served in authentic style",
					descriptionAr: "قهوة عربية تراثية مع الهيل والزعفران، تُقدم بالطريقة الأصيلة",
					basePrice:     "12.50",
					featured:      true,
					prepTime:      "5-7 minutes",
					ingredientsEn: []string{"Premium Arabica beans", "Cardamom pods", "Saffron threads", "Rose water"},
					ingredientsAr: []string{"حبوب أرابيكا فاخرة", "حبات هيل", "خيوط زعفران", "ماء ورد"},
					nutrition:     map[string]any{"calories": 5, "caffeine": 95},
					variations:    append(append(sizeVariations(), temperatureVariations(false)...), sweetnessVariations()...),
				},
				{
					nameEn:        "Turkish Coffee Supreme",
					nameAr:        "قهوة تركية ممتازة",
					descriptionEn: "Rich and intense Turkish coffee prepared in traditional copper cezve",
					descriptionAr: "قهوة تركية غنية ومكثفة محضرة في الجزفة النحاسية التراثية",
					basePrice:     "15.00",
					featured:      true,
					prepTime:      "8-10 minutes",
					ingredientsEn: []string{"Fine Turkish coffee grounds", "Sugar", "Water"},
					ingredientsAr: []string{"بن تركي ناعم", "سكر", "ماء"},
					nutrition:     map[string]any{"calories": 20, "caffeine": 120},
					variations:    append(sizeVariations(), sweetnessVariations()...),
				},
				{
					nameEn:        "Cortado Blend",
					nameAr:        "خليط كورتادو",
					descriptionEn: "Smooth espresso with steamed milk in perfect harmony",
					descriptionAr: "إسبرسو ناعم مع الحليب المبخر في انسجام مثالي",
					basePrice:     "9.75",
					prepTime:      "3-5 minutes",
					ingredientsEn: []string{"Espresso", "Steamed milk", "Milk foam"},
					ingredientsAr: []string{"إسبرسو", "حليب مبخر", "رغوة حليب"},
					allergens:     []string{"Dairy"},
					nutrition:     map[string]any{"calories": 90, "caffeine": 85, "fat": 4.5},
					variations:    sizeVariations(),
				},
			},
		},
		{
			nameEn:        "Fresh Juices",
			nameAr:        "العصائر الطازجة",
			descriptionEn: "Freshly squeezed natural juices bursting with vitamins",
			descriptionAr: "عصائر طبيعية طازجة مليئة بالفيتامينات",
			sortOrder:     2,
			products: []demoProduct{
				{
					nameEn:        "Pomegranate Power",
					nameAr:        "قوة الرمان",
					descriptionEn: "Pure pomegranate juice packed with antioxidants",
					descriptionAr: "عصير رمان نقي غني بمضادات الأكسدة",
					basePrice:     "11.00",
					featured:      true,
					prepTime:      "2-3 minutes",
					ingredientsEn: []string{"Fresh pomegranate seeds", "Apple juice", "Lemon juice"},
					ingredientsAr: []string{"بذور رمان طازجة", "عصير تفاح", "عصير ليمون"},
					nutrition:     map[string]any{"calories": 134, "sugar": 32},
					variations:    sizeVariations(),
				},
				{
					nameEn:        "Orange Sunrise",
					nameAr:        "شروق البرتقال",
					descriptionEn: "Freshly squeezed Valencia oranges with a hint of ginger",
					descriptionAr: "برتقال فالنسيا معصور طازجاً مع لمسة زنجبيل",
					basePrice:     "8.25",
					prepTime:      "2-3 minutes",
					ingredientsEn: []string{"Valencia oranges", "Fresh ginger", "Turmeric"},
					ingredientsAr: []string{"برتقال فالنسيا", "زنجبيل طازج", "كركم"},
					nutrition:     map[string]any{"calories": 112, "sugar": 26, "protein": 2},
					variations:    sizeVariations(),
				},
			},
		},
		{
			nameEn:        "Iced Beverages",
			nameAr:        "المشروبات المثلجة",
			descriptionEn: "Refreshing cold drinks perfect for any season",
			descriptionAr: "مشروبات باردة منعشة مثالية لأي موسم",
			sortOrder:     3,
			products: []demoProduct{
				{
					nameEn:        "Desert Rose",
					nameAr:        "وردة الصحراء",
					descriptionEn: "Rose water and pomegranate mocktail with crystallized ginger",
					descriptionAr: "كوكتيل ماء الورد والرمان مع الزنجبيل المسكر",
					basePrice:     "13.25",
					featured:      true,
					prepTime:      "4-6 minutes",
					ingredientsEn: []string{"Rose water", "Pomegranate juice", "Crystallized ginger", "Lime", "Soda water"},
					ingredientsAr: []string{"ماء ورد", "عصير رمان", "زنجبيل مسكر", "ليمون أخضر", "ماء غازي"},
					nutrition:     map[string]any{"calories": 95, "sugar": 23},
					variations:    append(sizeVariations(), temperatureVariations(true)...),
				},
			},
		},
	}
}

func seedDemoMenu(ctx context.Context, gdb *gorm.DB, adminID uuid.UUID) error {
	for _, cat := range demoMenu() {
		category, err := ensureCategory(ctx, gdb, adminID, cat)
		if err != nil {
			return fmt.Errorf("category %s: %w", cat.nameEn, err)
		}
		for _, prod := range cat.products {
			if err := ensureProduct(ctx, gdb, adminID, category.ID, prod); err != nil {
				return fmt.Errorf("product %s: %w", prod.nameEn, err)
			}
		}
	}
	return nil
}

func ensureCategory(ctx context.Context, gdb *gorm.DB, adminID uuid.UUID, cat demoCategory) (*models.Category, error) {
	var existing models.Category
	err := gdb.WithContext(ctx).Where("name_en = ?", cat.nameEn).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record := models.Category{
		NameEn:        cat.nameEn,
		NameAr:        cat.nameAr,
		DescriptionEn: &cat.descriptionEn,
		DescriptionAr: &cat.descriptionAr,
		IsActive:      true,
		SortOrder:     cat.sortOrder,
		CreatedByID:   &adminID,
	}
	if err := gdb.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func ensureProduct(ctx context.Context, gdb *gorm.DB, adminID uuid.UUID, categoryID uuid.UUID, prod demoProduct) error {
	var count int64
	err := gdb.WithContext(ctx).Model(&models.Product{}).
		Where("name_en = ? AND category_id = ?", prod.nameEn, categoryID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	basePrice, err := decimal.NewFromString(prod.basePrice)
	if err != nil {
		return fmt.Errorf("parse base price: %w", err)
	}

	record := models.Product{
		CategoryID:      categoryID,
		NameEn:          prod.nameEn,
		NameAr:          prod.nameAr,
		DescriptionEn:   &prod.descriptionEn,
		DescriptionAr:   &prod.descriptionAr,
		BasePrice:       basePrice,
		PreparationTime: &prod.prepTime,
		IngredientsEn:   dbtypes.StringList(prod.ingredientsEn),
		IngredientsAr:   dbtypes.StringList(prod.ingredientsAr),
		Allergens:       dbtypes.StringList(prod.allergens),
		NutritionInfo:   dbtypes.JSONMap(prod.nutrition),
		IsActive:        true,
		IsFeatured:      prod.featured,
		CreatedByID:     &adminID,
	}
	if record.Allergens == nil {
		record.Allergens = dbtypes.StringList{}
	}

	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return err
		}
		for _, v := range prod.variations {
			modifier, err := decimal.NewFromString(v.modifier)
			if err != nil {
				return fmt.Errorf("parse price modifier: %w", err)
			}
			variation := models.ProductVariation{
				ProductID:     record.ID,
				NameEn:        v.nameEn,
				NameAr:        v.nameAr,
				Type:          v.varType,
				PriceModifier: modifier,
				IsDefault:     v.isDefault,
				IsActive:      true,
				SortOrder:     v.sortOrder,
			}
			if err := tx.Create(&variation).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
