// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"

	"recipeas/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much demo data is created.
type Options struct {
	// ExtraUsers is the number of randomly generated users beyond the
	// fixed demo cast.
	ExtraUsers int
	// Password is assigned to every seeded account. Defaults to "friends".
	Password string
}

type demoUser struct {
	email     string
	firstName string
	lastName  string
	favorite  *models.Favorite
	pantry    string
}

// The fixed demo cast keeps known accounts and recipe ids stable so
// frontend fixtures keep working.
var demoCast = []demoUser{
	{"joey@joey.com", "Joey", "Tribbiani",
		&models.Favorite{RecipeID: 650700, RecipeName: "Mama Mia's Minestrone"}, "tuna"},
	{"rachel@rachel.com", "Rachel", "Green",
		&models.Favorite{RecipeID: 636732, RecipeName: "Cajun Lobster Pasta"}, "romaine"},
	{"ross@ross.com", "Ross", "Geller",
		&models.Favorite{RecipeID: 664017, RecipeName: "Turkey Chorizo and Potato Tacos"}, "pepper"},
	{"monica@monica.com", "Monica", "Geller",
		&models.Favorite{RecipeID: 641270, RecipeName: "Dark Chocolate Walnut Biscotti"}, "steak"},
	{"chandler@chandler.com", "Chandler", "Bing",
		&models.Favorite{RecipeID: 665170, RecipeName: "White Chocolate Cherry Hand Pies"}, "pinto beans"},
	{"pheobe@pheobe.com", "Pheobe", "Buffay",
		&models.Favorite{RecipeID: 664470, RecipeName: "Vegan Pea and Mint Pesto Bruschetta"}, "flour"},
}

// Run populates the database with the demo cast plus optional random users.
func Run(db *gorm.DB, opts Options) error {
	password := opts.Password
	if password == "" {
		password = "friends"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	for _, d := range demoCast {
		user := models.User{
			Email:     d.email,
			Password:  string(hashed),
			FirstName: d.firstName,
			LastName:  d.lastName,
		}
		if err := db.Where("email = ?", d.email).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user %s: %w", d.email, err)
		}

		if d.favorite != nil {
			fav := models.Favorite{
				UserID:     user.ID,
				RecipeID:   d.favorite.RecipeID,
				RecipeName: d.favorite.RecipeName,
			}
			if err := db.Where("user_id = ? AND recipe_id = ?", user.ID, fav.RecipeID).
				FirstOrCreate(&fav).Error; err != nil {
				return fmt.Errorf("failed to seed favorite for %s: %w", d.email, err)
			}
		}

		if d.pantry != "" {
			item := models.PantryItem{UserID: user.ID, IngredientName: d.pantry}
			if err := db.Where("user_id = ? AND ingredient_name = ?", user.ID, d.pantry).
				FirstOrCreate(&item).Error; err != nil {
				return fmt.Errorf("failed to seed pantry for %s: %w", d.email, err)
			}
		}
	}

	for i := 0; i < opts.ExtraUsers; i++ {
		user := models.User{
			Email:     gofakeit.Email(),
			Password:  string(hashed),
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
		}
		if err := db.Create(&user).Error; err != nil {
			// Random emails can collide; skip and move on.
			log.Printf("seed: skipping random user: %v", err)
			continue
		}

		pantryCount := gofakeit.Number(1, 5)
		for j := 0; j < pantryCount; j++ {
			item := models.PantryItem{
				UserID:         user.ID,
				IngredientName: gofakeit.Vegetable(),
			}
			if err := db.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to seed random pantry item: %w", err)
			}
		}
	}

	log.Printf("seed: %d demo users ready (+%d random)", len(demoCast), opts.ExtraUsers)
	return nil
}
