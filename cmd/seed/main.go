package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"golang.org/x/crypto/bcrypt"

	"hotelreserve/internal/database"
	"hotelreserve/internal/domain"
	"hotelreserve/internal/pkg/validator"
)

var hotelNames = []string{
	"Blue Nile Retreat", "Addis Comfort Inn", "Lalibela Sky Hotel",
	"Axum Heritage Lodge", "Simien Mountain View", "Omo Riverside",
	"Harar Old Town Hotel", "Gondar Castle Inn", "Bahir Dar Lakeside",
	"Dire Dawa Central", "Adama Oasis", "Arba Minch Panorama",
	"Mekele Highland Hotel", "Awash Falls Resort", "Debre Zeit Escape",
	"Shashemene Green Gardens", "Jimma Coffee House", "Jinka Valley Lodge",
	"Semera Desert Rose", "Negele Borana Eco Lodge",
}

var locations = []string{
	"Addis Ababa, Ethiopia", "Lalibela, Ethiopia", "Axum, Ethiopia",
	"Simien Mountains, Ethiopia", "Omo Valley, Ethiopia", "Harar, Ethiopia",
	"Gondar, Ethiopia", "Bahir Dar, Ethiopia", "Dire Dawa, Ethiopia",
	"Adama, Ethiopia", "Arba Minch, Ethiopia", "Mekele, Ethiopia",
	"Awash, Ethiopia", "Debre Zeit, Ethiopia", "Shashemene, Ethiopia",
	"Jimma, Ethiopia", "Jinka, Ethiopia", "Semera, Ethiopia",
	"Negele Borana, Ethiopia",
}

var roomTypes = []domain.RoomType{domain.RoomSingle, domain.RoomDouble, domain.RoomSuite}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotel.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := database.EnsureBookingExclusion(db); err != nil {
		log.Fatal("constraint setup failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@hotelreserve.et",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrator",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("create admin failed:", err)
	}

	clientHash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
	client := domain.User{
		Email:        "client@example.com",
		PasswordHash: string(clientHash),
		Role:         domain.RoleClient,
		Name:         "Test Client",
	}
	if err := db.Create(&client).Error; err != nil {
		log.Fatal("create client failed:", err)
	}

	log.Println("Creating hotels...")
	for i, name := range hotelNames {
		hotel := domain.Hotel{
			Name:        name,
			Location:    locations[i%len(locations)],
			Description: fmt.Sprintf("A lovely stay at %s.", name),
			HasPool:     rand.Intn(2) == 0,
			HasGym:      rand.Intn(2) == 0,
			Price:       50 + rand.Float64()*250,
			IsActive:    true,
		}
		if details := validator.Validate(hotel); details != nil {
			log.Fatalf("invalid hotel fixture %q: %v", name, details)
		}
		if err := db.Create(&hotel).Error; err != nil {
			log.Fatal("create hotel failed:", err)
		}

		roomCount := rand.Intn(6)
		for n := 0; n < roomCount; n++ {
			room := domain.Room{
				HotelID:       hotel.ID,
				Name:          fmt.Sprintf("Room %d", n+1),
				RoomType:      roomTypes[rand.Intn(len(roomTypes))],
				PricePerNight: 30 + rand.Float64()*170,
				Capacity:      1 + rand.Intn(4),
				IsAvailable:   true,
			}
			if err := db.Create(&room).Error; err != nil {
				log.Fatal("create room failed:", err)
			}
		}
		log.Printf("hotel=%q rooms=%d", name, roomCount)
	}

	log.Println("Seeding complete.")
}
