package memory

import "github.com/venue-booking-portal/internal/domain"

// sampleSites - статический каталог территорий, порядок объявления значим
func sampleSites() []domain.VenueSite {
	n := domain.IntPtr

	return []domain.VenueSite{
		{
			ID:          "al-wasl",
			Name:        domain.Text{En: "Al Wasl Plaza", Ar: "ساحة الوصل"},
			Description: domain.Text{En: "The iconic centerpiece of Expo City Dubai, featuring a stunning trellis dome perfect for large-scale events and spectacular projection shows.", Ar: "النقطة المحورية المميزة في إكسبو سيتي دبي، تتميز بقبة شبكية مذهلة مثالية للفعاليات الكبيرة وعروض الإسقاط المذهلة."},
			Image:       "/static/venues/al-wasl.jpg",
			Facilities: []domain.Facility{
				{
					ID:          "al-wasl-plaza",
					Name:        domain.Text{En: "Al Wasl Plaza Dome", Ar: "قبة ساحة الوصل"},
					Type:        domain.FacilityTypeOutdoorSpace,
					Indoor:      false,
					Capacity:    domain.Capacity{Standing: n(5000), Cocktail: n(3000)},
					Description: domain.Text{En: "Open-air plaza beneath the 360-degree projection dome.", Ar: "ساحة مفتوحة تحت قبة الإسقاط بزاوية 360 درجة."},
				},
				{
					ID:          "al-wasl-terrace",
					Name:        domain.Text{En: "Al Wasl Terrace", Ar: "تراس الوصل"},
					Type:        domain.FacilityTypeTerrace,
					Indoor:      false,
					Capacity:    domain.Capacity{Standing: n(400), Banquet: n(200), Cocktail: n(300)},
					Description: domain.Text{En: "Elevated terrace overlooking the plaza, suited to receptions.", Ar: "تراس مرتفع يطل على الساحة، مناسب لحفلات الاستقبال."},
				},
			},
			EventTags: []domain.Text{
				{En: "Concert", Ar: "حفلة موسيقية"},
				{En: "Festival", Ar: "مهرجان"},
				{En: "Corporate Event", Ar: "فعالية مؤسسية"},
				{En: "Gala", Ar: "حفل"},
			},
		},
		{
			ID:          "terra",
			Name:        domain.Text{En: "Terra – The Sustainability Pavilion", Ar: "تيرا – جناح الاستدامة"},
			Description: domain.Text{En: "An award-winning sustainable building with a state-of-the-art auditorium and innovative exhibition spaces.", Ar: "مبنى مستدام حائز على جوائز يضم قاعة حديثة ومساحات عرض مبتكرة."},
			Image:       "/static/venues/terra.jpg",
			Facilities: []domain.Facility{
				{
					ID:          "terra-auditorium",
					Name:        domain.Text{En: "Terra Auditorium", Ar: "قاعة تيرا"},
					Type:        domain.FacilityTypeTheatre,
					Indoor:      true,
					Capacity:    domain.Capacity{Seated: n(800)},
					Description: domain.Text{En: "A state-of-the-art auditorium with world-class acoustics and audiovisual capabilities.", Ar: "قاعة حديثة مجهزة بأحدث التقنيات الصوتية والمرئية."},
				},
				{
					ID:          "terra-garden",
					Name:        domain.Text{En: "Terra Forest Garden", Ar: "حديقة غابة تيرا"},
					Type:        domain.FacilityTypeGarden,
					Indoor:      false,
					Capacity:    domain.Capacity{Standing: n(600), Cocktail: n(450)},
					Description: domain.Text{En: "Shaded garden trail around the pavilion canopy.", Ar: "ممر حديقة مظلل حول مظلة الجناح."},
				},
				{
					ID:          "terra-function-room",
					Name:        domain.Text{En: "Terra Function Room", Ar: "قاعة مناسبات تيرا"},
					Type:        domain.FacilityTypeFunctionRoom,
					Indoor:      true,
					Capacity:    domain.Capacity{Seated: n(120), Banquet: n(100), Cocktail: n(150)},
					Description: domain.Text{En: "Flexible room for workshops and private dinners.", Ar: "قاعة مرنة لورش العمل والعشاء الخاص."},
				},
			},
			EventTags: []domain.Text{
				{En: "Conference", Ar: "مؤتمر"},
				{En: "Presentation", Ar: "عرض تقديمي"},
				{En: "Exhibition", Ar: "معرض"},
				{En: "Sustainability Forum", Ar: "منتدى الاستدامة"},
			},
		},
		{
			ID:          "jubilee-park",
			Name:        domain.Text{En: "Jubilee Park", Ar: "حديقة اليوبيل"},
			Description: domain.Text{En: "A beautiful outdoor park space perfect for exhibitions, product launches, festivals, and outdoor gatherings.", Ar: "مساحة حديقة خارجية جميلة مثالية للمعارض وإطلاق المنتجات والمهرجانات والتجمعات الخارجية."},
			Image:       "/static/venues/jubilee-park.jpg",
			Facilities: []domain.Facility{
				{
					ID:          "jubilee-lawn",
					Name:        domain.Text{En: "Jubilee Lawn", Ar: "مرج اليوبيل"},
					Type:        domain.FacilityTypePark,
					Indoor:      false,
					Capacity:    domain.Capacity{Standing: n(2000), Cocktail: n(1500)},
					Description: domain.Text{En: "Open lawn with power and water points for festival set-ups.", Ar: "مرج مفتوح مزود بنقاط كهرباء ومياه لتجهيزات المهرجانات."},
				},
				{
					ID:          "jubilee-amphitheatre",
					Name:        domain.Text{En: "Jubilee Amphitheatre", Ar: "مدرج اليوبيل"},
					Type:        domain.FacilityTypeAmphitheatre,
					Indoor:      false,
					Capacity:    domain.Capacity{Standing: n(1500), Seated: n(1000)},
					Description: domain.Text{En: "Tiered open-air seating facing a covered stage.", Ar: "مقاعد مدرجة في الهواء الطلق تواجه مسرحاً مغطى."},
				},
			},
			EventTags: []domain.Text{
				{En: "Exhibition", Ar: "معرض"},
				{En: "Product Launch", Ar: "إطلاق منتج"},
				{En: "Festival", Ar: "مهرجان"},
				{En: "Outdoor Gathering", Ar: "تجمع خارجي"},
			},
		},
		{
			ID:          "conference-centre",
			Name:        domain.Text{En: "Conference Centre", Ar: "مركز المؤتمرات"},
			Description: domain.Text{En: "Versatile conference halls equipped with modern amenities, suitable for corporate meetings, seminars, and workshops.", Ar: "قاعات مؤتمرات متعددة الاستخدامات مجهزة بأحدث المرافق، مناسبة للاجتماعات المؤسسية والندوات وورش العمل."},
			Image:       "/static/venues/conference-centre.jpg",
			Facilities: []domain.Facility{
				{
					ID:          "conference-hall-a",
					Name:        domain.Text{En: "Conference Centre – Hall A", Ar: "مركز المؤتمرات - القاعة أ"},
					Type:        domain.FacilityTypeConferenceHall,
					Indoor:      true,
					Capacity:    domain.Capacity{Seated: n(400), Banquet: n(300), Cocktail: n(450)},
					Description: domain.Text{En: "Column-free hall with built-in projection and interpretation booths.", Ar: "قاعة بدون أعمدة مزودة بأنظمة عرض وكبائن ترجمة."},
				},
				{
					ID:          "conference-hall-b",
					Name:        domain.Text{En: "Conference Centre – Hall B", Ar: "مركز المؤتمرات - القاعة ب"},
					Type:        domain.FacilityTypeConferenceHall,
					Indoor:      true,
					Capacity:    domain.Capacity{Seated: n(250), Banquet: n(180)},
					Description: domain.Text{En: "Mid-size hall for seminars and breakout sessions.", Ar: "قاعة متوسطة الحجم للندوات والجلسات الجانبية."},
				},
			},
			EventTags: []domain.Text{
				{En: "Conference", Ar: "مؤتمر"},
				{En: "Seminar", Ar: "ندوة"},
				{En: "Workshop", Ar: "ورشة عمل"},
				{En: "Corporate Meeting", Ar: "اجتماع مؤسسي"},
			},
		},
		{
			ID:          "mobility-district",
			Name:        domain.Text{En: "Mobility District", Ar: "منطقة التنقل"},
			Description: domain.Text{En: "The district around Alif – The Mobility Pavilion, with a large plaza and an intimate auditorium.", Ar: "المنطقة المحيطة بجناح ألف للتنقل، مع ساحة كبيرة وقاعة صغيرة."},
			Image:       "/static/venues/mobility-district.jpg",
			Facilities: []domain.Facility{
				{
					ID:          "mobility-plaza",
					Name:        domain.Text{En: "Mobility District Plaza", Ar: "ساحة منطقة التنقل"},
					Type:        domain.FacilityTypeOutdoorSpace,
					Indoor:      false,
					Capacity:    domain.Capacity{Standing: n(3500), Cocktail: n(2500)},
					Description: domain.Text{En: "Paved plaza suited to vehicle showcases and street festivals.", Ar: "ساحة مرصوفة مناسبة لعروض المركبات ومهرجانات الشوارع."},
				},
				{
					ID:          "alif-auditorium",
					Name:        domain.Text{En: "Alif Auditorium", Ar: "قاعة ألف"},
					Type:        domain.FacilityTypeTheatre,
					Indoor:      true,
					Capacity:    domain.Capacity{Seated: n(350)},
					Description: domain.Text{En: "Raked-seating auditorium inside the Mobility Pavilion.", Ar: "قاعة بمقاعد متدرجة داخل جناح التنقل."},
				},
			},
			EventTags: []domain.Text{
				{En: "Product Launch", Ar: "إطلاق منتج"},
				{En: "Festival", Ar: "مهرجان"},
				{En: "Conference", Ar: "مؤتمر"},
			},
		},
		{
			ID:          "garden-in-the-sky",
			Name:        domain.Text{En: "Garden in the Sky", Ar: "الحديقة في السماء"},
			Description: domain.Text{En: "A stunning rooftop garden offering panoramic views, ideal for intimate gatherings, receptions, and exclusive events.", Ar: "حديقة سطحية مذهلة توفر إطلالات بانورامية، مثالية للتجمعات الحميمة والحفلات والفعاليات الحصرية."},
			Image:       "/static/venues/garden-in-the-sky.jpg",
			Facilities: []domain.Facility{
				{
					ID:          "sky-deck",
					Name:        domain.Text{En: "Sky Deck", Ar: "منصة السماء"},
					Type:        domain.FacilityTypeRooftop,
					Indoor:      false,
					Capacity:    domain.Capacity{Standing: n(300), Banquet: n(120), Cocktail: n(250)},
					Description: domain.Text{En: "Rotating observation deck with a rooftop garden.", Ar: "منصة مراقبة دوارة مع حديقة على السطح."},
				},
			},
			EventTags: []domain.Text{
				{En: "Reception", Ar: "حفل استقبال"},
				{En: "Private Event", Ar: "فعالية خاصة"},
				{En: "Gala", Ar: "حفل"},
				{En: "Networking", Ar: "تواصل"},
			},
		},
	}
}
