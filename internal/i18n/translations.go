package i18n

import "github.com/venue-booking-portal/internal/domain"

// defaultTranslations - словари интерфейса. Ключ без перевода отображается как есть.
func defaultTranslations() map[domain.Language]map[string]string {
	return map[domain.Language]map[string]string{
		domain.LanguageEN: {
			// Navigation
			"nav.home":       "Home",
			"nav.explore":    "Explore Venues",
			"nav.howItWorks": "How It Works",
			"nav.myBookings": "My Bookings",
			"nav.signIn":     "Sign In / Register",
			"nav.guidelines": "Guidelines",
			"nav.switchLang": "العربية",

			// Hero
			"hero.title":        "Expo City Dubai Venue Booking Portal",
			"hero.subtitle":     "Discover our iconic venues and bring your next event to life at Expo City Dubai.",
			"hero.exploreBtn":   "Explore Venues",
			"hero.startBooking": "Start a Booking",

			// Benefits
			"benefits.venues.title":   "Iconic Venues",
			"benefits.venues.desc":    "From the stunning Al Wasl Plaza to the state-of-the-art Terra Auditorium and Mobility District Plaza – host unforgettable events.",
			"benefits.support.title":  "End-to-End Support",
			"benefits.support.desc":   "Comprehensive services including security, licensing, F&B catering, and logistics coordination for your event.",
			"benefits.tracking.title": "Transparent Tracking",
			"benefits.tracking.desc":  "Monitor your booking status in real-time through \"My Bookings\" – from submission to final approval.",

			// How it works
			"how.title":       "How It Works",
			"how.step1.title": "Explore Venues",
			"how.step1.desc":  "Browse our collection of world-class venues and find the perfect space for your event.",
			"how.step2.title": "Submit Request",
			"how.step2.desc":  "Complete the booking form with your event details and requirements.",
			"how.step3.title": "Track Approvals",
			"how.step3.desc":  "Monitor your request status and receive confirmation once approved.",

			// Footer
			"footer.faqs":    "FAQs & Guidelines",
			"footer.contact": "Contact Support",
			"footer.website": "Expo City Dubai",
			"footer.rights":  "© 2025 Expo City Dubai. All rights reserved.",

			// Common
			"common.loginRequired": "Login required",
			"common.back":          "Back",
			"common.next":          "Next",
			"common.backToHome":    "Back to Home",
			"common.indoor":        "Indoor",
			"common.outdoor":       "Outdoor",
			"common.guests":        "guests",

			// Venues list
			"venues.title":            "Explore Our Venues",
			"venues.subtitle":         "Find the perfect space for your next event",
			"venues.search":           "Search venues or facilities",
			"venues.type":             "Facility type",
			"venues.capacity":         "Capacity",
			"venues.date":             "Preferred date",
			"venues.allTypes":         "All types",
			"venues.allCapacities":    "Any capacity",
			"venues.apply":            "Apply filters",
			"venues.reset":            "Reset",
			"venues.results":          "venues found",
			"venues.noResults":        "No venues match your filters.",
			"venues.viewDetails":      "View Details",
			"venues.facilities":       "facilities",
			"venues.upTo":             "Up to",
			"venues.bucket.0-500":     "Up to 500",
			"venues.bucket.500-1000":  "501 – 1,000",
			"venues.bucket.1000-3000": "1,001 – 3,000",
			"venues.bucket.3000+":     "More than 3,000",

			// Venue detail
			"venue.notFound.title": "Venue Not Found",
			"venue.notFound.desc":  "We couldn't find the venue you're looking for.",
			"venue.backToVenues":   "Back to Venues",
			"venue.facilities":     "Facilities",
			"venue.suitableFor":    "Suitable For",
			"venue.totalCapacity":  "Total capacity",
			"venue.type":           "Type",
			"venue.capacity":       "Capacity",
			"venue.startBooking":   "Start Booking",
			"venue.calendar":       "Availability this month",
			"venue.available":      "Available",
			"venue.limited":        "Limited",
			"venue.booked":         "Booked",

			// Availability
			"availability.available": "Looks available for this date",
			"availability.reserved":  "This date is reserved for \"%s\" (%s)",

			// Login
			"login.title":            "Sign In",
			"login.registerTitle":    "Register",
			"login.subtitle":         "Sign in to manage your venue bookings",
			"login.email":            "Email",
			"login.emailHint":        "Enter your email",
			"login.password":         "Password",
			"login.passwordHint":     "Enter your password",
			"login.confirmPassword":  "Confirm Password",
			"login.submit":           "Sign In",
			"login.register":         "Register",
			"login.toRegister":       "Don't have an account? Register",
			"login.toSignIn":         "Already have an account? Sign In",
			"login.passwordMismatch": "Passwords do not match",
			"login.invalid":          "Please enter a valid email and password",

			// My bookings
			"bookings.title":      "My Bookings",
			"bookings.subtitle":   "Track the status of your venue requests",
			"bookings.reference":  "Reference",
			"bookings.event":      "Event",
			"bookings.venue":      "Venue",
			"bookings.date":       "Date",
			"bookings.status":     "Status",
			"bookings.view":       "View",
			"bookings.empty":      "You have no bookings yet.",
			"bookings.newBooking": "New Booking",

			// Booking detail
			"booking.notFound.title":    "Booking Not Found",
			"booking.notFound.desc":     "We couldn't find the booking you're looking for.",
			"booking.backToBookings":    "Back to My Bookings",
			"booking.approvals":         "Department Approvals",
			"booking.documents":         "Documents",
			"booking.messages":          "Messages",
			"booking.organizer":         "Organizer",
			"booking.state.completed":   "Completed",
			"booking.state.in-progress": "In Progress",
			"booking.state.pending":     "Pending",

			// Wizard
			"wizard.title":         "Venue Booking Request",
			"wizard.step":          "Step",
			"wizard.of":            "of",
			"wizard.step1":         "Event Details",
			"wizard.step2":         "Schedule & Venue",
			"wizard.step3":         "Services",
			"wizard.step4":         "Documents & Review",
			"wizard.selectedVenue": "Selected venue",
			"wizard.noVenue":       "No venue selected",
			"wizard.changeVenue":   "Change venue",

			"step1.organizer":       "Organizer",
			"step1.eventTitle":      "Event title",
			"step1.eventType":       "Event type",
			"step1.description":     "Event description",
			"step1.attendees":       "Expected attendees",
			"step1.vip":             "VIP guests attending",
			"step1.vipDetails":      "VIP details",
			"step1.type.conference": "Conference",
			"step1.type.exhibition": "Exhibition",
			"step1.type.concert":    "Concert",
			"step1.type.workshop":   "Workshop",
			"step1.type.private":    "Private Event",
			"step1.type.corporate":  "Corporate Event",
			"step1.type.other":      "Other",

			"step2.startDate":         "Start date",
			"step2.endDate":           "End date",
			"step2.multiDay":          "Multi-day event",
			"step2.startTime":         "Start time",
			"step2.endTime":           "End time",
			"step2.checkAvailability": "Check availability",

			"step3.security":                   "Security",
			"step3.securityRequired":           "Security services required",
			"step3.riskLevel":                  "Risk level",
			"step3.risk.low":                   "Low",
			"step3.risk.medium":                "Medium",
			"step3.risk.high":                  "High",
			"step3.securityNotes":              "Security notes",
			"step3.licenses":                   "Licenses & Permits",
			"step3.license.music":              "Live music",
			"step3.license.food":               "Food service",
			"step3.license.fireworks":          "Fireworks / pyrotechnics",
			"step3.license.structures":         "Temporary structures",
			"step3.catering":                   "Catering",
			"step3.cateringRequired":           "Catering required",
			"step3.cateringType":               "Catering type",
			"step3.catering.coffee":            "Coffee break",
			"step3.catering.buffet":            "Buffet",
			"step3.catering.seated":            "Seated dinner",
			"step3.covers":                     "F&B covers",
			"step3.av":                         "Audio-Visual",
			"step3.av.sound":                   "Sound system",
			"step3.av.projectors":              "Projectors",
			"step3.av.led":                     "LED screen",
			"step3.av.wifi":                    "Dedicated Wi-Fi",
			"step3.av.streaming":               "Live streaming",
			"step3.logistics":                  "Logistics",
			"step3.logistics.stage":            "Stage",
			"step3.logistics.seatingTheatre":   "Theatre seating",
			"step3.logistics.seatingClassroom": "Classroom seating",
			"step3.logistics.seatingBanquet":   "Banquet seating",
			"step3.logistics.booths":           "Exhibition booths",
			"step3.logistics.branding":         "Branding",
			"step3.notes":                      "Additional notes",

			"step4.documents":   "Supporting documents",
			"step4.upload":      "Upload",
			"step4.remove":      "Remove",
			"step4.review":      "Review your request",
			"step4.event":       "Event",
			"step4.schedule":    "Schedule",
			"step4.services":    "Services",
			"step4.terms":       "Terms & Conditions",
			"step4.acceptTerms": "I confirm that the above information is accurate and agree to the venue booking terms and conditions.",
			"step4.submit":      "Submit Booking",
			"step4.saveDraft":   "Save as Draft",

			// Confirmation
			"confirmation.submittedTitle": "Booking Submitted Successfully!",
			"confirmation.draftTitle":     "Draft Saved",
			"confirmation.submittedDesc":  "Your request has been received and will be reviewed by the appropriate Expo City Dubai teams. You will receive an email update shortly.",
			"confirmation.draftDesc":      "Your request has been saved as a draft. You can return to complete it anytime from My Bookings.",
			"confirmation.reference":      "Booking Reference Number",
			"confirmation.whatsNext":      "What's Next",
			"confirmation.next1":          "Our team will review your request within 3-5 business days.",
			"confirmation.next2":          "We may contact you for additional information if needed.",
			"confirmation.next3":          "You will receive notification of approval or requested modifications.",
			"confirmation.download":       "Download confirmation (PDF)",
			"confirmation.inquiries":      "For inquiries, please contact the Expo City Dubai bookings team at",

			// Guidelines
			"guidelines.title":         "FAQs & Guidelines",
			"guidelines.subtitle":      "Everything you need to know about booking venues at Expo City Dubai",
			"guidelines.booking.title": "Booking Guidelines",
			"guidelines.booking.desc":  "All booking requests must be submitted at least 30 days prior to the event date. Please ensure all required documentation is available including event details, licensing, and insurance information.",
			"guidelines.faq.title":     "Frequently Asked Questions",
			"guidelines.faq.desc":      "For inquiries about venue availability, pricing, or technical requirements, please refer to our comprehensive FAQ section or contact our support team.",
			"guidelines.contact.title": "Contact Us",
			"guidelines.contact.desc":  "For assistance with your bookings, reach out to our support team at bookings@expocitydubai.ae or call +971 4 XXX XXXX.",

			// Not found
			"notFound.title": "Page Not Found",
			"notFound.desc":  "The page you are looking for does not exist.",

			// Toasts
			"errors.START_DATE_REQUIRED":   "Please select a start date",
			"errors.END_DATE_REQUIRED":     "Please select an end date for a multi-day event",
			"errors.END_BEFORE_START":      "End date cannot be before the start date",
			"errors.INVALID_DATE":          "Please enter a valid date",
			"errors.TERMS_NOT_ACCEPTED":    "Please accept the terms and conditions",
			"errors.PASSWORD_MISMATCH":     "Passwords do not match",
			"errors.INVALID_CREDENTIALS":   "Please enter a valid email and password",
			"errors.INVALID_REQUEST":       "Please check the form and try again",
			"errors.INTERNAL_SERVER_ERROR": "Something went wrong, please try again",

			// Months
			"month.1": "January", "month.2": "February", "month.3": "March", "month.4": "April",
			"month.5": "May", "month.6": "June", "month.7": "July", "month.8": "August",
			"month.9": "September", "month.10": "October", "month.11": "November", "month.12": "December",
		},
		domain.LanguageAR: {
			"nav.home":       "الرئيسية",
			"nav.explore":    "استكشف الأماكن",
			"nav.howItWorks": "كيف يعمل",
			"nav.myBookings": "حجوزاتي",
			"nav.signIn":     "تسجيل الدخول / التسجيل",
			"nav.guidelines": "الإرشادات",
			"nav.switchLang": "English",

			"hero.title":        "بوابة حجز الأماكن في إكسبو سيتي دبي",
			"hero.subtitle":     "اكتشف أماكننا المميزة وأحيِ فعاليتك القادمة في إكسبو سيتي دبي.",
			"hero.exploreBtn":   "استكشف الأماكن",
			"hero.startBooking": "ابدأ الحجز",

			"benefits.venues.title":   "أماكن مميزة",
			"benefits.venues.desc":    "من ساحة الوصل المذهلة إلى قاعة تيرا الحديثة وساحة منطقة التنقل – استضف فعاليات لا تُنسى.",
			"benefits.support.title":  "دعم شامل",
			"benefits.support.desc":   "خدمات شاملة تشمل الأمن والتراخيص وخدمات الطعام والشراب والتنسيق اللوجستي لفعاليتك.",
			"benefits.tracking.title": "تتبع شفاف",
			"benefits.tracking.desc":  "راقب حالة حجزك في الوقت الفعلي من خلال \"حجوزاتي\" – من التقديم إلى الموافقة النهائية.",

			"how.title":       "كيف يعمل",
			"how.step1.title": "استكشف الأماكن",
			"how.step1.desc":  "تصفح مجموعتنا من الأماكن العالمية واعثر على المساحة المثالية لفعاليتك.",
			"how.step2.title": "قدم الطلب",
			"how.step2.desc":  "أكمل نموذج الحجز مع تفاصيل ومتطلبات فعاليتك.",
			"how.step3.title": "تتبع الموافقات",
			"how.step3.desc":  "راقب حالة طلبك واحصل على التأكيد بمجرد الموافقة.",

			"footer.faqs":    "الأسئلة الشائعة والإرشادات",
			"footer.contact": "اتصل بالدعم",
			"footer.website": "إكسبو سيتي دبي",
			"footer.rights":  "© 2025 إكسبو سيتي دبي. جميع الحقوق محفوظة.",

			"common.loginRequired": "يتطلب تسجيل الدخول",
			"common.back":          "رجوع",
			"common.next":          "التالي",
			"common.backToHome":    "الصفحة الرئيسية",
			"common.indoor":        "داخلي",
			"common.outdoor":       "خارجي",
			"common.guests":        "شخص",

			"venues.title":            "استكشف أماكننا",
			"venues.subtitle":         "اعثر على المساحة المثالية لفعاليتك القادمة",
			"venues.search":           "ابحث عن الأماكن أو المرافق",
			"venues.type":             "نوع المرفق",
			"venues.capacity":         "السعة",
			"venues.date":             "التاريخ المفضل",
			"venues.allTypes":         "جميع الأنواع",
			"venues.allCapacities":    "أي سعة",
			"venues.apply":            "تطبيق",
			"venues.reset":            "إعادة تعيين",
			"venues.results":          "مكان",
			"venues.noResults":        "لا توجد أماكن تطابق معايير البحث.",
			"venues.viewDetails":      "عرض التفاصيل",
			"venues.facilities":       "مرافق",
			"venues.upTo":             "حتى",
			"venues.bucket.0-500":     "حتى 500",
			"venues.bucket.500-1000":  "501 – 1,000",
			"venues.bucket.1000-3000": "1,001 – 3,000",
			"venues.bucket.3000+":     "أكثر من 3,000",

			"venue.notFound.title": "المكان غير موجود",
			"venue.notFound.desc":  "لم نتمكن من العثور على المكان الذي تبحث عنه.",
			"venue.backToVenues":   "العودة إلى الأماكن",
			"venue.facilities":     "المرافق",
			"venue.suitableFor":    "مناسب لـ",
			"venue.totalCapacity":  "السعة الإجمالية",
			"venue.type":           "النوع",
			"venue.capacity":       "السعة",
			"venue.startBooking":   "ابدأ الحجز",
			"venue.calendar":       "التوفر هذا الشهر",
			"venue.available":      "متاح",
			"venue.limited":        "محدود",
			"venue.booked":         "محجوز",

			"availability.available": "يبدو متاحاً لهذا التاريخ",
			"availability.reserved":  "هذا التاريخ محجوز لـ \"%s\" (%s)",

			"login.title":            "تسجيل الدخول",
			"login.registerTitle":    "سجل الآن",
			"login.subtitle":         "سجل الدخول لإدارة حجوزاتك",
			"login.email":            "البريد الإلكتروني",
			"login.emailHint":        "أدخل بريدك الإلكتروني",
			"login.password":         "كلمة المرور",
			"login.passwordHint":     "أدخل كلمة المرور",
			"login.confirmPassword":  "تأكيد كلمة المرور",
			"login.submit":           "تسجيل الدخول",
			"login.register":         "سجل الآن",
			"login.toRegister":       "ليس لديك حساب؟ سجل الآن",
			"login.toSignIn":         "لديك حساب بالفعل؟ سجل الدخول",
			"login.passwordMismatch": "كلمتا المرور غير متطابقتين",
			"login.invalid":          "يرجى إدخال بريد إلكتروني وكلمة مرور صالحين",

			"bookings.title":      "حجوزاتي",
			"bookings.subtitle":   "تابع حالة طلبات الحجز الخاصة بك",
			"bookings.reference":  "الرقم المرجعي",
			"bookings.event":      "الفعالية",
			"bookings.venue":      "المكان",
			"bookings.date":       "التاريخ",
			"bookings.status":     "الحالة",
			"bookings.view":       "عرض",
			"bookings.empty":      "لا توجد حجوزات بعد.",
			"bookings.newBooking": "حجز جديد",

			"booking.notFound.title":    "الحجز غير موجود",
			"booking.notFound.desc":     "لم نتمكن من العثور على الحجز الذي تبحث عنه.",
			"booking.backToBookings":    "العودة إلى حجوزاتي",
			"booking.approvals":         "موافقات الإدارات",
			"booking.documents":         "المستندات",
			"booking.messages":          "الرسائل",
			"booking.organizer":         "المنظم",
			"booking.state.completed":   "مكتمل",
			"booking.state.in-progress": "قيد التنفيذ",
			"booking.state.pending":     "قيد الانتظار",

			"wizard.title":         "طلب حجز مكان",
			"wizard.step":          "الخطوة",
			"wizard.of":            "من",
			"wizard.step1":         "تفاصيل الفعالية",
			"wizard.step2":         "الموعد والمكان",
			"wizard.step3":         "الخدمات",
			"wizard.step4":         "المستندات والمراجعة",
			"wizard.selectedVenue": "المكان المختار",
			"wizard.noVenue":       "لم يتم اختيار مكان",
			"wizard.changeVenue":   "تغيير المكان",

			"step1.organizer":       "المنظم",
			"step1.eventTitle":      "عنوان الفعالية",
			"step1.eventType":       "نوع الفعالية",
			"step1.description":     "وصف الفعالية",
			"step1.attendees":       "عدد الحضور المتوقع",
			"step1.vip":             "حضور شخصيات مهمة",
			"step1.vipDetails":      "تفاصيل الشخصيات المهمة",
			"step1.type.conference": "مؤتمر",
			"step1.type.exhibition": "معرض",
			"step1.type.concert":    "حفلة موسيقية",
			"step1.type.workshop":   "ورشة عمل",
			"step1.type.private":    "فعالية خاصة",
			"step1.type.corporate":  "فعالية مؤسسية",
			"step1.type.other":      "أخرى",

			"step2.startDate":         "تاريخ البدء",
			"step2.endDate":           "تاريخ الانتهاء",
			"step2.multiDay":          "فعالية متعددة الأيام",
			"step2.startTime":         "وقت البدء",
			"step2.endTime":           "وقت الانتهاء",
			"step2.checkAvailability": "تحقق من التوفر",

			"step3.security":                   "الأمن",
			"step3.securityRequired":           "مطلوب خدمات أمنية",
			"step3.riskLevel":                  "مستوى المخاطر",
			"step3.risk.low":                   "منخفض",
			"step3.risk.medium":                "متوسط",
			"step3.risk.high":                  "مرتفع",
			"step3.securityNotes":              "ملاحظات أمنية",
			"step3.licenses":                   "التراخيص والتصاريح",
			"step3.license.music":              "موسيقى حية",
			"step3.license.food":               "تقديم الطعام",
			"step3.license.fireworks":          "ألعاب نارية",
			"step3.license.structures":         "هياكل مؤقتة",
			"step3.catering":                   "خدمات الطعام",
			"step3.cateringRequired":           "مطلوب خدمات طعام",
			"step3.cateringType":               "نوع الضيافة",
			"step3.catering.coffee":            "استراحة قهوة",
			"step3.catering.buffet":            "بوفيه",
			"step3.catering.seated":            "عشاء بمقاعد",
			"step3.covers":                     "عدد الوجبات",
			"step3.av":                         "الصوت والصورة",
			"step3.av.sound":                   "نظام صوت",
			"step3.av.projectors":              "أجهزة عرض",
			"step3.av.led":                     "شاشة LED",
			"step3.av.wifi":                    "شبكة واي فاي مخصصة",
			"step3.av.streaming":               "بث مباشر",
			"step3.logistics":                  "اللوجستيات",
			"step3.logistics.stage":            "منصة",
			"step3.logistics.seatingTheatre":   "جلوس مسرحي",
			"step3.logistics.seatingClassroom": "جلوس صفي",
			"step3.logistics.seatingBanquet":   "جلوس مأدبة",
			"step3.logistics.booths":           "أجنحة عرض",
			"step3.logistics.branding":         "العلامة التجارية",
			"step3.notes":                      "ملاحظات إضافية",

			"step4.documents":   "المستندات الداعمة",
			"step4.upload":      "رفع",
			"step4.remove":      "إزالة",
			"step4.review":      "راجع طلبك",
			"step4.event":       "الفعالية",
			"step4.schedule":    "الموعد",
			"step4.services":    "الخدمات",
			"step4.terms":       "الشروط والأحكام",
			"step4.acceptTerms": "أؤكد أن المعلومات الواردة أعلاه صحيحة وأوافق على شروط وأحكام حجز المكان.",
			"step4.submit":      "تقديم الحجز",
			"step4.saveDraft":   "حفظ كمسودة",

			"confirmation.submittedTitle": "تم تقديم الحجز بنجاح!",
			"confirmation.draftTitle":     "تم حفظ المسودة",
			"confirmation.submittedDesc":  "تم استلام طلبك وسيتم مراجعته من قبل فرق إكسبو سيتي دبي المختصة. ستتلقى تحديثًا عبر البريد الإلكتروني قريبًا.",
			"confirmation.draftDesc":      "تم حفظ طلبك كمسودة. يمكنك العودة لإكماله في أي وقت من صفحة حجوزاتي.",
			"confirmation.reference":      "الرقم المرجعي للحجز",
			"confirmation.whatsNext":      "الخطوات التالية",
			"confirmation.next1":          "سيقوم فريقنا بمراجعة طلبك خلال 3-5 أيام عمل.",
			"confirmation.next2":          "قد نتواصل معك للحصول على معلومات إضافية إذا لزم الأمر.",
			"confirmation.next3":          "ستتلقى إشعارًا بالموافقة أو طلب تعديلات.",
			"confirmation.download":       "تنزيل التأكيد (PDF)",
			"confirmation.inquiries":      "للاستفسارات، يرجى التواصل مع فريق حجوزات إكسبو سيتي دبي على",

			"guidelines.title":         "الأسئلة الشائعة والإرشادات",
			"guidelines.subtitle":      "كل ما تحتاج لمعرفته حول حجز الأماكن في إكسبو سيتي دبي",
			"guidelines.booking.title": "إرشادات الحجز",
			"guidelines.booking.desc":  "يجب تقديم جميع طلبات الحجز قبل 30 يومًا على الأقل من تاريخ الفعالية. يرجى التأكد من توفر جميع الوثائق المطلوبة بما في ذلك تفاصيل الفعالية والترخيص ومعلومات التأمين.",
			"guidelines.faq.title":     "الأسئلة الشائعة",
			"guidelines.faq.desc":      "للاستفسارات حول توفر المكان أو الأسعار أو المتطلبات الفنية، يرجى الرجوع إلى قسم الأسئلة الشائعة الشامل الخاص بنا أو التواصل مع فريق الدعم.",
			"guidelines.contact.title": "اتصل بنا",
			"guidelines.contact.desc":  "للحصول على المساعدة في حجوزاتك، تواصل مع فريق الدعم على bookings@expocitydubai.ae أو اتصل على +971 4 XXX XXXX.",

			"notFound.title": "الصفحة غير موجودة",
			"notFound.desc":  "الصفحة التي تبحث عنها غير موجودة.",

			// Toasts
			"errors.START_DATE_REQUIRED":   "يرجى اختيار تاريخ البدء",
			"errors.END_DATE_REQUIRED":     "يرجى اختيار تاريخ الانتهاء للفعالية متعددة الأيام",
			"errors.END_BEFORE_START":      "لا يمكن أن يكون تاريخ الانتهاء قبل تاريخ البدء",
			"errors.INVALID_DATE":          "يرجى إدخال تاريخ صالح",
			"errors.TERMS_NOT_ACCEPTED":    "يرجى قبول الشروط والأحكام",
			"errors.PASSWORD_MISMATCH":     "كلمات المرور غير متطابقة",
			"errors.INVALID_CREDENTIALS":   "يرجى إدخال بريد إلكتروني وكلمة مرور صالحين",
			"errors.INVALID_REQUEST":       "يرجى التحقق من النموذج والمحاولة مرة أخرى",
			"errors.INTERNAL_SERVER_ERROR": "حدث خطأ ما، يرجى المحاولة مرة أخرى",

			"month.1": "يناير", "month.2": "فبراير", "month.3": "مارس", "month.4": "أبريل",
			"month.5": "مايو", "month.6": "يونيو", "month.7": "يوليو", "month.8": "أغسطس",
			"month.9": "سبتمبر", "month.10": "أكتوبر", "month.11": "نوفمبر", "month.12": "ديسمبر",
		},
	}
}
