// Package geo resolves animal city names to map coordinates using a fixed
// lookup table. Good enough for placing pins on a country-level map; not a
// real geocoder.
package geo

import "strings"

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

var cities = map[string]Point{
	"porto":            {41.1579, -8.6291},
	"lisboa":           {38.7223, -9.1393},
	"lisbon":           {38.7223, -9.1393},
	"braga":            {41.5454, -8.4265},
	"coimbra":          {40.2033, -8.4103},
	"faro":             {37.0194, -7.9322},
	"aveiro":           {40.6405, -8.6538},
	"setúbal":          {38.5244, -8.8882},
	"évora":            {38.5714, -7.9135},
	"guimarães":        {41.4425, -8.2918},
	"viseu":            {40.6566, -7.9125},
	"leiria":           {39.7436, -8.8071},
	"santarém":         {39.2362, -8.6868},
	"beja":             {38.0151, -7.8632},
	"castelo branco":   {39.8222, -7.4909},
	"portalegre":       {39.2967, -7.4286},
	"vila real":        {41.3006, -7.7441},
	"bragança":         {41.8061, -6.7567},
	"viana do castelo": {41.6918, -8.8345},
	"funchal":          {32.6669, -16.9241},
	"ponta delgada":    {37.7412, -25.6756},
}

// Lookup resolves a city name, case-insensitively. The second return value is
// false for cities not in the table.
func Lookup(city string) (Point, bool) {
	point, ok := cities[strings.ToLower(strings.TrimSpace(city))]
	return point, ok
}
