// Package tripstest provides small CSV datasets for tests that need a Loader.
package tripstest

import (
	"os"
	"path/filepath"
	"testing"

	"bikeshare/internal/trips"
)

// ChicagoCSV has five trips across January, March, May and June 2017 with
// gender and birth year columns.
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Subscriber,Male,1981.0
304487,2017-03-06 13:49:38,2017-03-06 13:55:28,350,Christiana Ave & Lawrence Ave,St. Louis Ave & Balmoral Ave,Subscriber,,
45207,2017-01-17 14:53:07,2017-01-17 15:02:34,534,Clark St & Randolph St,Desplaines St & Jackson Blvd,Customer,,
`

// NewYorkCityCSV has three trips with gender and birth year columns.
const NewYorkCityCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
5688089,2017-06-11 14:55:05,2017-06-11 15:08:21,795,Suffolk St & Stanton St,W Broadway & Spring St,Subscriber,Male,1998.0
4096714,2017-05-11 15:30:11,2017-05-11 15:41:43,692,Lexington Ave & E 63 St,1 Ave & E 78 St,Subscriber,Male,1981.0
2173887,2017-03-29 13:26:26,2017-03-29 13:48:31,1325,1 Pl & Clinton St,Henry St & Degraw St,Subscriber,Male,1987.0
`

// WashingtonCSV has three trips and no gender or birth year columns.
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
1330037,2017-05-30 01:02:59,2017-05-30 01:13:37,637.251,17th St & Massachusetts Ave NW,5th & K St NW,Subscriber
`

// Row counts of the fixtures.
const (
	ChicagoRows     = 5
	NewYorkCityRows = 3
	WashingtonRows  = 3
)

// WriteFile writes content into dir/name and returns the path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("tripstest.WriteFile: %v", err)
	}
	return path
}

// WriteCities writes the three city fixtures into a temporary directory and
// returns Sources pointing at them.
func WriteCities(t *testing.T) trips.Sources {
	t.Helper()

	dir := t.TempDir()
	return trips.NewSources(map[trips.City]string{
		trips.Chicago:     WriteFile(t, dir, "chicago.csv", ChicagoCSV),
		trips.NewYorkCity: WriteFile(t, dir, "new_york_city.csv", NewYorkCityCSV),
		trips.Washington:  WriteFile(t, dir, "washington.csv", WashingtonCSV),
	})
}
