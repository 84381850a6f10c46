package models

var ModelTypeRegistry = map[string]interface{}{
	"Author": Author{},
	"Post":   Post{},
}
