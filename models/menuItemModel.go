package models

// MenuItem is a catalog entry. The struct carries no ID field: new items
// get a generated ObjectID on insert, while legacy records keep their
// original string key, so reads pass documents through as raw bson.
type MenuItem struct {
	Name     string  `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Category string  `bson:"category" json:"category" validate:"required"`
	Price    float64 `bson:"price" json:"price" validate:"required,gt=0"`
	Recipe   string  `bson:"recipe" json:"recipe"`
	Image    string  `bson:"image" json:"image"`
}
