package mockapi

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/quantumio/qtask/internal/client/models"
)

var (
	firstNames = []string{
		"John", "Jane", "Ada", "Alan", "Grace", "Linus", "Margaret", "Dennis",
		"Barbara", "Ken", "Radia", "Vint", "Katherine", "Tim", "Hedy", "Edsger",
	}
	lastNames = []string{
		"Doe", "Lovelace", "Turing", "Hopper", "Torvalds", "Hamilton", "Ritchie",
		"Liskov", "Thompson", "Perlman", "Cerf", "Johnson", "Berners-Lee", "Lamarr",
	}
	titles = []string{"Mr", "Ms", "Mrs", "Dr"}

	cities = []struct {
		city, state, country, nat string
	}{
		{"Billings", "Michigan", "United States", "US"},
		{"Leeds", "Yorkshire", "United Kingdom", "GB"},
		{"Nantes", "Pays de la Loire", "France", "FR"},
		{"Bergen", "Vestland", "Norway", "NO"},
		{"Hamilton", "Ontario", "Canada", "CA"},
		{"Cairns", "Queensland", "Australia", "AU"},
	}

	streets = []string{"Valwood Pkwy", "Main St", "Rue de la Paix", "Elm St", "Harbour Rd", "Oak Ave"}
)

// GenerateUsers produces n directory entries with unique identifiers. The
// rng controls everything except the uuids, so a fixed seed yields the same
// names for golden-style assertions.
func GenerateUsers(n int, rng *rand.Rand) []models.User {
	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		loc := cities[rng.Intn(len(cities))]
		id := uuid.NewString()

		users = append(users, models.User{
			Login: models.UserLogin{UUID: id},
			Name: models.UserName{
				Title: titles[rng.Intn(len(titles))],
				First: first,
				Last:  last,
			},
			Email: fmt.Sprintf("%s.%s%d@example.com", strings.ToLower(first), strings.ToLower(last), i),
			Phone: fmt.Sprintf("0%d%d-%d%d%d-%d%d%d%d",
				rng.Intn(10), rng.Intn(10), rng.Intn(10), rng.Intn(10), rng.Intn(10),
				rng.Intn(10), rng.Intn(10), rng.Intn(10), rng.Intn(10)),
			Cell: fmt.Sprintf("08%d-%d%d%d-%d%d%d%d",
				rng.Intn(10), rng.Intn(10), rng.Intn(10), rng.Intn(10),
				rng.Intn(10), rng.Intn(10), rng.Intn(10), rng.Intn(10)),
			Location: models.UserLocation{
				Street: models.Street{
					Number: 1 + rng.Intn(9999),
					Name:   streets[rng.Intn(len(streets))],
				},
				City:     loc.city,
				State:    loc.state,
				Country:  loc.country,
				Postcode: models.Postcode(fmt.Sprintf("%05d", rng.Intn(100000))),
			},
			Picture: models.UserPicture{
				Large:     fmt.Sprintf("https://example.com/portraits/%s/large.jpg", id),
				Medium:    fmt.Sprintf("https://example.com/portraits/%s/medium.jpg", id),
				Thumbnail: fmt.Sprintf("https://example.com/portraits/%s/thumb.jpg", id),
			},
			Nat: loc.nat,
		})
	}
	return users
}
