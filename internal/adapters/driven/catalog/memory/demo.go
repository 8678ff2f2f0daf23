package memory

import "github.com/custodia-labs/medley/internal/core/domain"

// NewDemoCatalog returns a small cross-media catalog for offline use.
func NewDemoCatalog() *Catalog {
	c := NewCatalog()
	for _, item := range []domain.ResultItem{
		{ID: "42", Title: "Inception", Creator: "Christopher Nolan", Year: "2010", Type: domain.MediaMovie,
			Description: "A thief who steals secrets through dream-sharing is offered a chance at redemption."},
		{ID: "43", Title: "Interstellar", Creator: "Christopher Nolan", Year: "2014", Type: domain.MediaMovie,
			Description: "Explorers travel through a wormhole in search of a new home for humanity."},
		{ID: "44", Title: "Paprika", Creator: "Satoshi Kon", Year: "2006", Type: domain.MediaMovie,
			Description: "A research psychologist enters patients' dreams with a device that gets stolen."},
		{ID: "45", Title: "The Matrix", Creator: "The Wachowskis", Year: "1999", Type: domain.MediaMovie},
		{ID: "b1", Title: "Do Androids Dream of Electric Sheep?", Creator: "Philip K. Dick", Year: "1968",
			Type: domain.MediaBook},
		{ID: "b2", Title: "Dune", Creator: "Frank Herbert", Year: "1965", Type: domain.MediaBook,
			Description: "A noble family is handed control of the desert planet Arrakis."},
		{ID: "b3", Title: "Neuromancer", Creator: "William Gibson", Year: domain.UnknownYear, Type: domain.MediaBook},
		{ID: "t1", Title: "Black Mirror", Creator: "Charlie Brooker", Year: "2011", Type: domain.MediaTV},
		{ID: "t2", Title: "Westworld", Creator: "Jonathan Nolan", Year: "2016", Type: domain.MediaTV},
		{ID: "m1", Title: "Time", Creator: "Hans Zimmer", Year: "2010", Type: domain.MediaMusic},
		{ID: "m2", Title: "Dune: Original Motion Picture Soundtrack", Creator: "Hans Zimmer", Year: "2021",
			Type: domain.MediaMusic},
	} {
		c.AddItem(item)
	}

	for _, e := range []struct{ from, to, label string }{
		{"42", "43", "Same director"},
		{"42", "44", "Similar premise"},
		{"42", "m1", "From the soundtrack"},
		{"42", "b1", "Similar themes"},
		{"43", "42", "Same director"},
		{"43", "b2", "Epic science fiction"},
		{"43", "t2", "Co-writer's series"},
		{"44", "42", "Similar premise"},
		{"45", "b3", "Cyberpunk roots"},
		{"45", "t1", "Technology paranoia"},
		{"b1", "45", "Questions of humanity"},
		{"b1", "t2", "Artificial people"},
		{"b2", "m2", "Adaptation soundtrack"},
		{"b2", "43", "Epic science fiction"},
		{"b3", "45", "Cyberpunk descendants"},
		{"t1", "45", "Technology paranoia"},
		{"t2", "b1", "Artificial people"},
		{"m1", "42", "Soundtrack of"},
		{"m2", "b2", "Based on"},
	} {
		// Items above are all present, so Relate cannot fail.
		_ = c.Relate(e.from, e.to, e.label)
	}
	return c
}
