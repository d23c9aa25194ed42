package cats

import "time"

// DateLayout es el formato de birthdate en la API y en SQLite.
const DateLayout = "2006-01-02"

// Owner es el usuario dueño del gato, tal como se embebe en las respuestas.
type Owner struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
}

// Coordinates se persiste como POINT(lat, lng).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Cat es el registro principal del servicio.
type Cat struct {
	ID        int64
	Name      string
	Weight    float64
	Filename  string
	Birthdate time.Time
	Coords    Coordinates
	Owner     Owner
}

// NewCat son los datos ya validados para un INSERT.
type NewCat struct {
	Name      string
	Weight    float64
	OwnerID   int64
	Filename  string
	Birthdate time.Time
	Coords    Coordinates
}

// Patch es un update parcial: nil = no tocar.
type Patch struct {
	Name      *string
	Weight    *float64
	Filename  *string
	Birthdate *time.Time
	Coords    *Coordinates
}

// Field identifica una columna lógica modificable.
type Field string

const (
	FieldName      Field = "cat_name"
	FieldWeight    Field = "weight"
	FieldFilename  Field = "filename"
	FieldBirthdate Field = "birthdate"
	FieldCoords    Field = "coords"
)

// Assignment es un par columna/valor de un Patch, en orden estable.
type Assignment struct {
	Field Field
	Value any
}

// Assignments lista sólo los campos presentes. Coords lleva un Coordinates como valor;
// cada adapter decide cómo escribirlo (POINT en Postgres, lat/lng en SQLite).
func (p Patch) Assignments() []Assignment {
	out := make([]Assignment, 0, 5)
	if p.Name != nil {
		out = append(out, Assignment{Field: FieldName, Value: *p.Name})
	}
	if p.Weight != nil {
		out = append(out, Assignment{Field: FieldWeight, Value: *p.Weight})
	}
	if p.Filename != nil {
		out = append(out, Assignment{Field: FieldFilename, Value: *p.Filename})
	}
	if p.Birthdate != nil {
		out = append(out, Assignment{Field: FieldBirthdate, Value: *p.Birthdate})
	}
	if p.Coords != nil {
		out = append(out, Assignment{Field: FieldCoords, Value: *p.Coords})
	}
	return out
}

func (p Patch) IsEmpty() bool {
	return len(p.Assignments()) == 0
}

// Apply copia los campos presentes sobre c (usado por el store en memoria).
func (p Patch) Apply(c *Cat) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Weight != nil {
		c.Weight = *p.Weight
	}
	if p.Filename != nil {
		c.Filename = *p.Filename
	}
	if p.Birthdate != nil {
		c.Birthdate = *p.Birthdate
	}
	if p.Coords != nil {
		c.Coords = *p.Coords
	}
}

// Scope es el predicado de autorización del update:
//
//	cat_id = ? AND (admin OR owner = actor)
//
// Los adapters SQL lo pasan como parámetros; nunca hay una query por rol.
type Scope struct {
	ActorID int64
	Admin   bool
}

// Allows evalúa el mismo predicado en Go.
func (s Scope) Allows(ownerID int64) bool {
	return s.Admin || s.ActorID == ownerID
}
