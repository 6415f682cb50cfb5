package scan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-profiler/internal/domain/pets"

	"github.com/google/uuid"
)

// ErrParse: al payload de scan le falta un campo obligatorio o tiene otro tipo.
var ErrParse = errors.New("scan results: missing or invalid field")

type object = map[string]any

// ParseScanResults mapea el objeto scan_results anidado a un Pet plano.
// Es todo o nada: si falta un campo obligatorio no devuelve un registro parcial.
// Los opcionales mal tipados se descartan uno por uno.
// Name, UserID y PetID los completa el caller; ID se genera acá.
func ParseScanResults(raw []byte) (pets.Pet, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var root object
	if err := dec.Decode(&root); err != nil || root == nil {
		return pets.Pet{}, fmt.Errorf("%w: not an object", ErrParse)
	}

	p := pets.Pet{ID: uuid.NewString()}
	r := reader{}

	breed := r.obj(root, "breed_identification")
	p.PrimaryBreed = r.str(breed, "primary_breed")

	size := r.obj(root, "size")
	p.Height = r.num(size, "height")
	p.Weight = r.num(size, "weight")
	p.Length = r.num(size, "length")

	p.Gender = r.str(root, "gender")

	coat := r.obj(root, "coat")
	p.CoatLength = r.str(coat, "length")
	p.CoatType = r.str(coat, "type")
	p.CoatColor = CoatColor(r.str(coat, "color"))

	p.Age = r.integer(root, "age")
	p.FitnessLevel = r.str(root, "fitness_level")
	p.AnimalType = r.str(root, "animal_type")
	props := r.obj(root, "breed_properties")

	if r.missing != "" {
		return pets.Pet{}, fmt.Errorf("%w: %s", ErrParse, r.missing)
	}

	p.SecondaryBreed = optStr(breed, "secondary_breed")
	p.DescriptionAdjectives = optStr(props, "description_adjectives")
	p.Hypoallergenic = optInt(props, "hypoallergenic")
	p.AverageWeight = optNum(props, "average_weight")
	p.AverageHeight = optNum(props, "average_height")
	p.DogYearsMultiplier = optNum(props, "dog_years_multiplier")
	p.BiteForce = optNum(props, "bite_force")
	p.BreedDescription = optStr(props, "breed_description")

	return p, nil
}

// CoatColor devuelve el primer token separado por espacios ("golden brown" -> "golden").
func CoatColor(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// reader acumula el primer campo obligatorio faltante.
type reader struct {
	missing string
}

func (r *reader) fail(key string) {
	if r.missing == "" {
		r.missing = key
	}
}

func (r *reader) obj(m object, key string) object {
	v, ok := m[key].(map[string]any)
	if !ok {
		r.fail(key)
		return nil
	}
	return v
}

func (r *reader) str(m object, key string) string {
	v, ok := m[key].(string)
	if !ok {
		r.fail(key)
	}
	return v
}

func (r *reader) num(m object, key string) float64 {
	n, ok := m[key].(json.Number)
	if !ok {
		r.fail(key)
		return 0
	}
	f, err := n.Float64()
	if err != nil {
		r.fail(key)
	}
	return f
}

func (r *reader) integer(m object, key string) int {
	n, ok := m[key].(json.Number)
	if !ok {
		r.fail(key)
		return 0
	}
	i, err := n.Int64()
	if err != nil {
		r.fail(key)
	}
	return int(i)
}

func optStr(m object, key string) *string {
	v, ok := m[key].(string)
	if !ok {
		return nil
	}
	return &v
}

func optNum(m object, key string) *float64 {
	n, ok := m[key].(json.Number)
	if !ok {
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil
	}
	return &f
}

func optInt(m object, key string) *int {
	n, ok := m[key].(json.Number)
	if !ok {
		return nil
	}
	i, err := n.Int64()
	if err != nil {
		return nil
	}
	v := int(i)
	return &v
}
