package catalog

import "github.com/shelfwise/shelfwise/internal/domain"

// Sample returns the embedded demo catalog. It is the fallback when
// no model artifacts and no catalog file exist, so a fresh install
// can serve recommendations immediately.
func Sample() []domain.Book {
	return []domain.Book{
		{
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			Genre:       "Classic Literature",
			Description: "A classic American novel about the Jazz Age and the American Dream. Set in the summer of 1922, it tells the story of Jay Gatsby and his obsession with Daisy Buchanan.",
			Rating:      4.2,
			Year:        1925,
		},
		{
			Title:       "To Kill a Mockingbird",
			Author:      "Harper Lee",
			Genre:       "Classic Literature",
			Description: "A gripping tale of racial injustice and childhood innocence in the American South. The story follows Scout Finch as she grows up in a small Alabama town.",
			Rating:      4.5,
			Year:        1960,
		},
		{
			Title:       "1984",
			Author:      "George Orwell",
			Genre:       "Dystopian Fiction",
			Description: "A dystopian social science fiction novel about totalitarian control and surveillance. Winston Smith struggles against the oppressive regime of Big Brother.",
			Rating:      4.4,
			Year:        1949,
		},
		{
			Title:       "Pride and Prejudice",
			Author:      "Jane Austen",
			Genre:       "Romance",
			Description: "A romantic novel about manners, upbringing, morality, and marriage in Georgian England. Elizabeth Bennet navigates love and social expectations.",
			Rating:      4.3,
			Year:        1813,
		},
		{
			Title:       "The Catcher in the Rye",
			Author:      "J.D. Salinger",
			Genre:       "Coming of Age",
			Description: "A controversial novel about teenage rebellion and alienation. Holden Caulfield wanders New York City after being expelled from prep school.",
			Rating:      3.8,
			Year:        1951,
		},
		{
			Title:       "Harry Potter and the Philosopher's Stone",
			Author:      "J.K. Rowling",
			Genre:       "Fantasy",
			Description: "A young wizard discovers his magical heritage and attends Hogwarts School of Witchcraft and Wizardry. The beginning of an epic fantasy series.",
			Rating:      4.7,
			Year:        1997,
		},
		{
			Title:       "The Lord of the Rings",
			Author:      "J.R.R. Tolkien",
			Genre:       "Fantasy",
			Description: "An epic high fantasy novel about the quest to destroy the One Ring. Frodo Baggins and his companions journey through Middle-earth.",
			Rating:      4.6,
			Year:        1954,
		},
		{
			Title:       "The Hunger Games",
			Author:      "Suzanne Collins",
			Genre:       "Dystopian Fiction",
			Description: "A dystopian novel about a televised fight to the death. Katniss Everdeen volunteers to take her sister's place in the deadly competition.",
			Rating:      4.1,
			Year:        2008,
		},
	}
}
