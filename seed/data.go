// Package seed holds the development fixtures: two accounts and a small
// starter catalog. Loading wipes the users and dishes collections.
package seed

import (
	"github.com/itsraghul/hearty-foods/models"
	"golang.org/x/crypto/bcrypt"
)

// Users returns the fixture accounts. Passwords are hashed at call time.
func Users() ([]models.User, error) {
	admin, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	customer, err := bcrypt.GenerateFromPassword([]byte("raghul123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return []models.User{
		{
			Name:     "Admin",
			Email:    "admin@heartyfoods.com",
			Password: string(admin),
			IsAdmin:  true,
		},
		{
			Name:     "Raghul",
			Email:    "raghul@example.com",
			Password: string(customer),
			IsAdmin:  false,
		},
	}, nil
}

// Dishes returns the starter catalog.
func Dishes() []models.Dish {
	return []models.Dish{
		{
			Name:         "Crunchy Taco",
			Slug:         "crunchy-taco",
			Image:        "/images/taco.jpeg",
			Price:        80,
			Category:     "Starters",
			Cuisine:      "Mexican",
			CountInStock: 20,
			Description:  "Crispy corn shell with spiced beans, lettuce and cheese",
			Rating:       4.5,
			NumReviews:   12,
		},
		{
			Name:         "Paneer Butter Masala",
			Slug:         "paneer-butter-masala",
			Image:        "/images/paneer.jpeg",
			Price:        160,
			Category:     "Main Course",
			Cuisine:      "Indian",
			CountInStock: 15,
			Description:  "Cottage cheese simmered in a rich tomato butter gravy",
			Rating:       4.8,
			NumReviews:   20,
		},
		{
			Name:         "Margherita Pizza",
			Slug:         "margherita-pizza",
			Image:        "/images/pizza.jpeg",
			Price:        220,
			Category:     "Main Course",
			Cuisine:      "Italian",
			CountInStock: 10,
			Description:  "Wood-fired base with fresh mozzarella and basil",
			Rating:       4.6,
			NumReviews:   18,
		},
		{
			Name:         "Veggie Burger",
			Slug:         "veggie-burger",
			Image:        "/images/burger.jpeg",
			Price:        120,
			Category:     "Snacks",
			Cuisine:      "American",
			CountInStock: 25,
			Description:  "Grilled vegetable patty with cheddar and house sauce",
			Rating:       4.2,
			NumReviews:   9,
		},
		{
			Name:         "Hyderabadi Biryani",
			Slug:         "hyderabadi-biryani",
			Image:        "/images/biryani.jpeg",
			Price:        250,
			Category:     "Main Course",
			Cuisine:      "Indian",
			CountInStock: 12,
			Description:  "Fragrant basmati rice layered with spiced vegetables",
			Rating:       4.9,
			NumReviews:   31,
		},
		{
			Name:         "Pasta Alfredo",
			Slug:         "pasta-alfredo",
			Image:        "/images/pasta.jpeg",
			Price:        180,
			Category:     "Main Course",
			Cuisine:      "Italian",
			CountInStock: 0,
			Description:  "Fettuccine tossed in a creamy parmesan sauce",
			Rating:       4.3,
			NumReviews:   7,
		},
	}
}
