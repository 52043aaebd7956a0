package schedule

import (
	"sort"

	"github.com/ilmualam/imsakiah/internal/waktu"
)

// Zone is one JAKIM prayer-time zone with its generated timetable.
type Zone struct {
	ID    string // catalog key, e.g. "WP-KL"
	State string
	Name  string // sub-zone description
	Code  string // official JAKIM code, e.g. "WLY01"
	Times []DaySchedule
}

type zoneDef struct {
	id, state, name, code string
	imsak, maghrib        string
	imsakAdj, maghribAdj  int
}

// Base times per zone from the official JAKIM Ramadan 1446H tables. East
// Malaysia maghrib times hold steady across the month, so those zones carry
// a zero maghrib drift.
var zoneDefs = []zoneDef{
	{"WP-KL", "Wilayah Persekutuan", "Kuala Lumpur & Putrajaya", "WLY01", "06:02", "19:21", -1, -1},
	{"WP-LABUAN", "Wilayah Persekutuan", "Labuan", "WLY02", "05:12", "18:28", -1, 0},
	{"SGR-01", "Selangor", "Gombak, Petaling, Sepang, Hulu Langat, Hulu Selangor, Shah Alam", "SGR01", "06:02", "19:21", -1, -1},
	{"SGR-02", "Selangor", "Kuala Selangor, Sabak Bernam", "SGR02", "06:04", "19:23", -1, -1},
	{"SGR-03", "Selangor", "Klang, Kuala Langat", "SGR03", "06:03", "19:22", -1, -1},
	{"JHR-01", "Johor", "Pulau Aur, Pemanggil", "JHR01", "05:54", "19:18", -1, -1},
	{"JHR-02", "Johor", "Johor Bahru, Kulai, Kota Tinggi, Mersing", "JHR02", "05:57", "19:21", -1, -1},
	{"JHR-03", "Johor", "Kluang, Pontian", "JHR03", "05:58", "19:22", -1, -1},
	{"JHR-04", "Johor", "Batu Pahat, Muar, Segamat, Gemas", "JHR04", "06:00", "19:24", -1, -1},
	{"KDH-01", "Kedah", "Kota Setar, Kubang Pasu, Pokok Sena", "KDH01", "06:15", "19:32", -1, -1},
	{"KDH-02", "Kedah", "Kuala Muda, Yan, Pendang", "KDH02", "06:14", "19:31", -1, -1},
	{"KDH-03", "Kedah", "Padang Terap, Sik", "KDH03", "06:13", "19:30", -1, -1},
	{"KDH-04", "Kedah", "Baling", "KDH04", "06:11", "19:28", -1, -1},
	{"KDH-05", "Kedah", "Kulim, Bandar Baharu", "KDH05", "06:11", "19:28", -1, -1},
	{"KDH-06", "Kedah", "Langkawi", "KDH06", "06:18", "19:35", -1, -1},
	{"KTN-01", "Kelantan", "Bachok, Kota Bharu, Machang, Pasir Mas, Pasir Puteh, Tanah Merah, Tumpat, Kuala Krai, Mukim Chiku", "KTN01", "05:57", "19:11", -1, -1},
	{"KTN-02", "Kelantan", "Gua Musang (Daerah Galas, Bertam), Jeli", "KTN02", "05:59", "19:13", -1, -1},
	{"MLK-01", "Melaka", "Seluruh Negeri Melaka", "MLK01", "05:59", "19:20", -1, -1},
	{"NSN-01", "Negeri Sembilan", "Tampin, Jempol", "NSN01", "06:01", "19:22", -1, -1},
	{"NSN-02", "Negeri Sembilan", "Port Dickson, Seremban, Kuala Pilah, Jelebu, Rembau", "NSN02", "06:02", "19:22", -1, -1},
	{"PHG-01", "Pahang", "Pulau Tioman", "PHG01", "05:50", "19:08", -1, -1},
	{"PHG-02", "Pahang", "Kuantan, Pekan, Rompin, Muadzam Shah", "PHG02", "05:54", "19:13", -1, -1},
	{"PHG-03", "Pahang", "Jerantut, Temerloh, Maran, Bera, Chenor, Jengka", "PHG03", "05:58", "19:17", -1, -1},
	{"PHG-04", "Pahang", "Bentong, Lipis, Raub", "PHG04", "06:00", "19:18", -1, -1},
	{"PHG-05", "Pahang", "Genting Highlands, Cameron Highlands", "PHG05", "06:02", "19:20", -1, -1},
	{"PRK-01", "Perak", "Tapah, Slim River, Tanjung Malim", "PRK01", "06:05", "19:24", -1, -1},
	{"PRK-02", "Perak", "Ipoh, Batu Gajah, Kampar, Kuala Kangsar, Sg Siput", "PRK02", "06:07", "19:26", -1, -1},
	{"PRK-03", "Perak", "Pengkalan Hulu, Gerik, Lenggong", "PRK03", "06:09", "19:30", -1, -1},
	{"PRK-04", "Perak", "Temengor, Belum", "PRK04", "06:10", "19:31", -1, -1},
	{"PRK-05", "Perak", "Teluk Intan, Bagan Datoh, Kg Gajah, Seri Iskandar, Beruas, Parit, Lumut, Sitiawan, Pantai Remis", "PRK05", "06:08", "19:27", -1, -1},
	{"PRK-06", "Perak", "Selama, Taiping, Bagan Serai, Parit Buntar", "PRK06", "06:10", "19:28", -1, -1},
	{"PRK-07", "Perak", "Bukit Larut", "PRK07", "06:11", "19:29", -1, -1},
	{"PLS-01", "Perlis", "Seluruh Negeri Perlis", "PLS01", "06:17", "19:34", -1, -1},
	{"PNG-01", "Pulau Pinang", "Seluruh Negeri Pulau Pinang", "PNG01", "06:12", "19:29", -1, -1},
	{"SBH-01", "Sabah", "Sandakan, Tungku, Beluran, Kinabatangan, Telupit, Kuamut", "SBH01", "05:02", "18:18", -1, 0},
	{"SBH-02", "Sabah", "Pinangah, Pensiangan, Kemabong, Tenom, Nabawan", "SBH02", "05:08", "18:24", -1, 0},
	{"SBH-03", "Sabah", "Kota Kinabalu, Ranau, Kota Belud, Tuaran, Penampang, Papar", "SBH03", "05:10", "18:26", -1, 0},
	{"SBH-04", "Sabah", "Kudat, Pitas, Kota Marudu", "SBH04", "05:08", "18:24", -1, 0},
	{"SBH-05", "Sabah", "Keningau, Tambunan, Beaufort, Sipitang, Kuala Penyu, Membakut", "SBH05", "05:11", "18:27", -1, 0},
	{"SBH-06", "Sabah", "Lahad Datu, Silabukan, Kunak, Semporna, Tambisan, Tawau", "SBH06", "04:59", "18:20", -1, 0},
	{"SWK-01", "Sarawak", "Kuching, Lundu, Sematan, Bau", "SWK01", "05:25", "18:43", -1, 0},
	{"SWK-02", "Sarawak", "Sri Aman, Lubok Antu, Lingga", "SWK02", "05:21", "18:38", -1, 0},
	{"SWK-03", "Sarawak", "Sibu, Mukah, Dalat, Song, Igan, Oya, Balingian, Kanowit, Kapit", "SWK03", "05:14", "18:30", -1, 0},
	{"SWK-04", "Sarawak", "Miri, Niah, Bekenu, Sibuti, Marudi", "SWK04", "05:10", "18:26", -1, 0},
	{"SWK-05", "Sarawak", "Limbang, Lawas, Sundar, Trusan", "SWK05", "05:09", "18:25", -1, 0},
	{"SWK-06", "Sarawak", "Sarikei, Maradong, Julau, Pakan, Bintangor, Belaga", "SWK06", "05:16", "18:33", -1, 0},
	{"SWK-07", "Sarawak", "Bintulu, Tatau, Sebauh", "SWK07", "05:11", "18:28", -1, 0},
	{"SWK-08", "Sarawak", "Serian, Simunjan, Samarahan, Sebuyau, Meludam", "SWK08", "05:23", "18:41", -1, 0},
	{"SWK-09", "Sarawak", "Betong, Saratok, Roban, Debak, Kabong, Pusa", "SWK09", "05:19", "18:36", -1, 0},
	{"TRG-01", "Terengganu", "Kuala Terengganu, Marang, Kuala Nerus", "TRG01", "05:52", "19:08", -1, -1},
	{"TRG-02", "Terengganu", "Besut, Setiu", "TRG02", "05:53", "19:08", -1, -1},
	{"TRG-03", "Terengganu", "Hulu Terengganu", "TRG03", "05:54", "19:10", -1, -1},
	{"TRG-04", "Terengganu", "Dungun, Kemaman", "TRG04", "05:52", "19:09", -1, -1},
}

// Catalog is the embedded zone timetable set for one period.
type Catalog struct {
	Period Period
	zones  map[string]Zone
	order  []string
}

// NewCatalog generates every zone's timetable for the given period.
func NewCatalog(p Period) *Catalog {
	c := &Catalog{
		Period: p,
		zones:  make(map[string]Zone, len(zoneDefs)),
		order:  make([]string, 0, len(zoneDefs)),
	}
	for _, d := range zoneDefs {
		c.zones[d.id] = Zone{
			ID:    d.id,
			State: d.state,
			Name:  d.name,
			Code:  d.code,
			Times: Generate(p, waktu.MustParse(d.imsak), waktu.MustParse(d.maghrib), d.imsakAdj, d.maghribAdj),
		}
		c.order = append(c.order, d.id)
	}
	return c
}

// Zone looks up a zone by catalog key.
func (c *Catalog) Zone(id string) (Zone, bool) {
	z, ok := c.zones[id]
	return z, ok
}

// Zones returns every zone in catalog (definition) order, grouped by state.
func (c *Catalog) Zones() []Zone {
	out := make([]Zone, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.zones[id])
	}
	return out
}

// States returns the distinct state names in catalog order.
func (c *Catalog) States() []string {
	seen := make(map[string]bool)
	var states []string
	for _, id := range c.order {
		st := c.zones[id].State
		if !seen[st] {
			seen[st] = true
			states = append(states, st)
		}
	}
	return states
}

// ZonesByState returns the zones belonging to one state, sorted by key.
func (c *Catalog) ZonesByState(state string) []Zone {
	var out []Zone
	for _, id := range c.order {
		if c.zones[id].State == state {
			out = append(out, c.zones[id])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
