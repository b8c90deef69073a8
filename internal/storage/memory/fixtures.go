package memory

import (
	"bikeshare-explorer/internal/domain"
	"bikeshare-explorer/internal/storage"
)

// LoadFixtures populates the store with a small sample trip history per city,
// using the source CSV header names. Washington has no Gender or Birth Year column.
func LoadFixtures(store *TripStore) error {
	fixtures := map[domain.City]*storage.Dataset{
		domain.CityChicago: {
			Columns: []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type", "Gender", "Birth Year"},
			Rows: [][]string{
				{"1423854", "2017-06-23 15:09:32", "2017-06-23 15:14:53", "321", "Wood St & Hubbard St", "Damen Ave & Chicago Ave", "Subscriber", "Male", "1992.0"},
				{"955915", "2017-05-25 18:19:03", "2017-05-25 18:45:53", "1610", "Theater on the Lake", "Sheffield Ave & Waveland Ave", "Subscriber", "Female", "1992.0"},
				{"9031", "2017-01-04 08:27:49", "2017-01-04 08:34:45", "416", "May St & Taylor St", "Wood St & Taylor St", "Subscriber", "Male", "1981.0"},
				{"304487", "2017-03-06 13:49:38", "2017-03-06 13:55:28", "350", "Christiana Ave & Lawrence Ave", "St. Louis Ave & Balmoral Ave", "Subscriber", "Male", "1986.0"},
				{"45207", "2017-01-17 14:53:07", "2017-01-17 15:02:01", "534", "Clark St & Randolph St", "Desplaines St & Jackson Blvd", "Subscriber", "Male", "1975.0"},
				{"1473887", "2017-06-26 09:01:20", "2017-06-26 09:11:06", "586", "Clinton St & Washington Blvd", "Canal St & Taylor St", "Subscriber", "Male", "1990.0"},
				{"961916", "2017-05-26 09:41:44", "2017-05-26 09:46:25", "281", "Canal St & Adams St", "Clinton St & Lake St", "Customer", "", ""},
				{"65924", "2017-01-21 14:28:38", "2017-01-21 14:40:41", "723", "Wood St & Hubbard St", "Damen Ave & Chicago Ave", "Subscriber", "Female", "1983.0"},
			},
		},
		domain.CityNewYorkCity: {
			Columns: []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type", "Gender", "Birth Year"},
			Rows: [][]string{
				{"5688089", "2017-06-11 14:55:05", "2017-06-11 15:08:21", "795", "Suffolk St & Stanton St", "W Broadway & Spring St", "Subscriber", "Male", "1998.0"},
				{"4096714", "2017-05-11 15:30:11", "2017-05-11 15:41:43", "692", "Lexington Ave & E 63 St", "1 Ave & E 78 St", "Subscriber", "Male", "1981.0"},
				{"2173887", "2017-03-29 13:26:26", "2017-03-29 13:48:31", "1325", "1 Pl & Clinton St", "Henry St & Degraw St", "Subscriber", "Male", "1987.0"},
				{"3945638", "2017-05-08 19:47:18", "2017-05-08 19:59:01", "703", "Barrow St & Hudson St", "W 20 St & 8 Ave", "Subscriber", "Female", "1986.0"},
				{"6208972", "2017-06-21 07:49:16", "2017-06-21 07:54:46", "329", "1 Ave & E 44 St", "E 53 St & 3 Ave", "Subscriber", "Male", "1992.0"},
				{"1285652", "2017-02-22 18:55:24", "2017-02-22 19:12:03", "998", "State St & Smith St", "Bond St & Fulton St", "Customer", "", ""},
			},
		},
		domain.CityWashington: {
			Columns: []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"},
			Rows: [][]string{
				{"1621326", "2017-06-21 08:36:34", "2017-06-21 08:44:43", "489.066", "14th & Belmont St NW", "15th & K St NW", "Subscriber"},
				{"482740", "2017-03-11 10:40:00", "2017-03-11 10:46:00", "402.549", "Yuma St & Tenley Circle NW", "Connecticut Ave & Yuma St NW", "Subscriber"},
				{"1330037", "2017-05-30 01:02:59", "2017-05-30 01:13:37", "637.251", "17th St & Massachusetts Ave NW", "5th & K St NW", "Subscriber"},
				{"665458", "2017-04-02 07:48:35", "2017-04-02 08:19:03", "1827.341", "Constitution Ave & 2nd St NW/DOL", "M St & Pennsylvania Ave NW", "Customer"},
				{"1481135", "2017-06-10 08:36:28", "2017-06-10 09:02:17", "1549.427", "Henry Bacon Dr & Lincoln Memorial Circle NW", "Maine Ave & 7th St SW", "Subscriber"},
			},
		},
	}

	for _, city := range domain.Cities {
		if err := store.Put(city, fixtures[city]); err != nil {
			return err
		}
	}
	return nil
}
