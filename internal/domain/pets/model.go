package pets

import "time"

// Personalities disponibles al confirmar el perfil.
var Personalities = []string{
	"Friendly",
	"Energetic",
	"Calm",
	"Playful",
	"Loyal",
	"Assertive",
	"Intelligent",
	"Bold",
	"Independent",
}

// Pet es el perfil de una mascota tal como sale del scan y se guarda localmente.
//
// ID es un identificador local del proceso y NO es el PetID del backend;
// ID, PetID y UserID deben estar seteados para poder persistir.
type Pet struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	PrimaryBreed   string  `json:"primary_breed"`
	SecondaryBreed *string `json:"secondary_breed,omitempty"`

	// Unidades según el backend (no se convierten).
	Height float64 `json:"height"`
	Weight float64 `json:"weight"`
	Length float64 `json:"length"`

	Gender       string `json:"gender"`
	CoatLength   string `json:"coat_length"`
	CoatType     string `json:"coat_type"`
	CoatColor    string `json:"coat_color"`
	Age          int    `json:"age"`
	FitnessLevel string `json:"fitness_level"`
	AnimalType   string `json:"animal_type"`
	ImagePath    string `json:"image_path"`

	Personality *string    `json:"personality,omitempty"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	ZodiacSign  *string    `json:"zodiac_sign,omitempty"`

	// Propiedades de raza (todas opcionales)
	DescriptionAdjectives *string  `json:"description_adjectives,omitempty"`
	Hypoallergenic        *int     `json:"hypoallergenic,omitempty"`
	AverageWeight         *float64 `json:"average_weight,omitempty"`
	AverageHeight         *float64 `json:"average_height,omitempty"`
	DogYearsMultiplier    *float64 `json:"dog_years_multiplier,omitempty"`
	BiteForce             *float64 `json:"bite_force,omitempty"`
	BreedDescription      *string  `json:"breed_description,omitempty"`

	UserID string `json:"user_id"`
	PetID  string `json:"pet_id"`
}
