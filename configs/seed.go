package configs

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mhd-mansour/promotions-favorites/entity"
)

// สร้าง user เริ่มต้นสำหรับ demo
func SeedAdmin() error {
	db := DB()
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
	}
	return db.Create(&admin).Error
}

// Seed แคตตาล็อกโปรโมชั่นเริ่มต้น (โปรโมชั่นสร้างจากตรงนี้ที่เดียว ไม่มี endpoint สร้าง)
func SeedPromotions() error {
	db := DB()
	now := time.Now()

	promos := []entity.Promotion{
		{
			Title: "50% Off Electronics", TitleAr: "خصم 50% على الإلكترونيات",
			Merchant: "TechMart", MerchantAr: "تك مارت",
			RewardAmount: 25.00, RewardCurrency: "USD",
			Description:  "Get 50% off on all electronics including smartphones, laptops, and accessories.",
			Terms:        "Valid until end of month. Cannot be combined with other offers.",
			ThumbnailURL: "/static/promos/electronics.svg",
			ExpiresAt:    now.AddDate(0, 2, 0),
		},
		{
			Title: "Buy 2 Get 1 Free Coffee", TitleAr: "اشتري 2 واحصل على 1 مجاناً - قهوة",
			Merchant: "CoffeePlus", MerchantAr: "كوفي بلس",
			RewardAmount: 5.99, RewardCurrency: "USD",
			Description:  "Purchase any two coffee drinks and get the third one absolutely free.",
			Terms:        "Valid on all coffee sizes. Dine-in only.",
			ThumbnailURL: "/static/promos/coffee.svg",
			ExpiresAt:    now.AddDate(0, 1, 0),
		},
		{
			Title: "30% Cashback on Groceries", TitleAr: "استرداد نقدي 30% على البقالة",
			Merchant: "FreshMart", MerchantAr: "فريش مارت",
			RewardAmount: 15.00, RewardCurrency: "USD",
			Description:  "Earn 30% cashback on your grocery shopping up to $50.",
			Terms:        "Minimum purchase $50. Valid on fresh produce only.",
			ThumbnailURL: "/static/promos/groceries.svg",
			ExpiresAt:    now.AddDate(0, 1, 15),
		},
		{
			Title: "Free Delivery on Orders", TitleAr: "توصيل مجاني للطلبات",
			Merchant: "QuickEats", MerchantAr: "كويك إيتس",
			RewardAmount: 3.99, RewardCurrency: "USD",
			Description:  "Free delivery on all food orders above $20.",
			Terms:        "Valid for first-time users only. Limited time offer.",
			ThumbnailURL: "/static/promos/food.svg",
			ExpiresAt:    now.AddDate(0, 0, 20),
		},
		{
			Title: "20% Off Fashion Items", TitleAr: "خصم 20% على الأزياء",
			Merchant: "StyleHub", MerchantAr: "ستايل هب",
			RewardAmount: 12.50, RewardCurrency: "USD",
			Description:  "Get 20% discount on all fashion clothing and accessories.",
			Terms:        "Valid on regular priced items only. Excludes sale items.",
			ThumbnailURL: "/static/promos/fashion.svg",
			ExpiresAt:    now.AddDate(0, 3, 0),
		},
		{
			Title: "Double Points Weekend", TitleAr: "نقاط مضاعفة في نهاية الأسبوع",
			Merchant: "GameZone", MerchantAr: "جيم زون",
			RewardAmount: 10.00, RewardCurrency: "USD",
			Description:  "Earn double reward points on all gaming purchases this weekend.",
			Terms:        "Valid Saturday and Sunday only. Points expire in 6 months.",
			ThumbnailURL: "/static/promos/gaming.svg",
			ExpiresAt:    now.AddDate(0, 0, 10),
		},
		{
			Title: "€15 Off Travel Bookings", TitleAr: "خصم 15 يورو على حجوزات السفر",
			Merchant: "TravelDeals", MerchantAr: "ترافل ديلز",
			RewardAmount: 15.00, RewardCurrency: "EUR",
			Description:  "Save €15 on your next travel booking for flights or hotels.",
			Terms:        "Minimum booking value €100. Valid for new bookings only.",
			ThumbnailURL: "/static/promos/travel.svg",
			ExpiresAt:    now.AddDate(0, 4, 0),
		},
		{
			Title: "Free Gym Trial Week", TitleAr: "أسبوع تجريبي مجاني في الجيم",
			Merchant: "FitLife", MerchantAr: "فيت لايف",
			RewardAmount: 25.00, RewardCurrency: "USD",
			Description:  "Get a free one-week trial membership to our premium gym facilities.",
			Terms:        "Valid for new members only. Must provide valid ID.",
			ThumbnailURL: "/static/promos/fitness.svg",
			ExpiresAt:    now.AddDate(0, 2, 15),
		},
		{
			Title: "£10 Cashback on Books", TitleAr: "استرداد نقدي 10 جنيه على الكتب",
			Merchant: "BookWorld", MerchantAr: "بوك وورلد",
			RewardAmount: 10.00, RewardCurrency: "GBP",
			Description:  "Earn £10 cashback when you spend £50 or more on books.",
			Terms:        "Valid on physical books only. Excludes digital purchases.",
			ThumbnailURL: "/static/promos/books.svg",
			ExpiresAt:    now.AddDate(0, 0, 25),
		},
		{
			Title: "EXPIRED: 40% Off Pizza", TitleAr: "منتهي الصلاحية: خصم 40% على البيتزا",
			Merchant: "PizzaCorner", MerchantAr: "بيتزا كورنر",
			RewardAmount: 8.00, RewardCurrency: "USD",
			Description:  "Get 40% off on all pizza orders. Large selection available.",
			Terms:        "Valid for pickup orders only. Cannot combine with other offers.",
			ThumbnailURL: "/static/promos/pizza.svg",
			ExpiresAt:    now.AddDate(0, -1, 0),
		},
		{
			Title: "25% Off Home Decor", TitleAr: "خصم 25% على ديكور المنزل",
			Merchant: "HomeStyle", MerchantAr: "هوم ستايل",
			RewardAmount: 18.75, RewardCurrency: "USD",
			Description:  "Transform your home with 25% off on all home decor items.",
			Terms:        "Valid on furniture, lighting, and accessories. Free shipping included.",
			ThumbnailURL: "/static/promos/home.svg",
			ExpiresAt:    now.AddDate(0, 2, 14),
		},
		{
			Title: "EXPIRED: Student Discount", TitleAr: "منتهي الصلاحية: خصم الطلاب",
			Merchant: "EduSupplies", MerchantAr: "إيدو سبلايز",
			RewardAmount: 7.50, RewardCurrency: "USD",
			Description:  "Special student discount on educational supplies and materials.",
			Terms:        "Valid student ID required. Cannot be used with other promotions.",
			ThumbnailURL: "/static/promos/education.svg",
			ExpiresAt:    now.AddDate(0, -2, 0),
		},
	}

	for _, p := range promos {
		if err := db.Where(entity.Promotion{Title: p.Title, Merchant: p.Merchant}).
			FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}

	log.Println("promotion catalogue seeded")
	return nil
}
