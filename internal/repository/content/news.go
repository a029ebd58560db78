package content

import "github.com/shikshasetu/examsearch/internal/domain"

// newsRecords returns the exam news items.
func newsRecords() []domain.SearchableRecord {
	return []domain.SearchableRecord{
		{
			ID:         "news-tre4-notification",
			Type:       domain.TypeNews,
			Title:      "BPSC TRE 4.0 Notification Expected Soon",
			TitleHindi: "BPSC TRE 4.0 अधिसूचना शीघ्र अपेक्षित",
			Body: "The Bihar Public Service Commission is expected to release the TRE 4.0 notification covering " +
				"vacancies across primary, middle and secondary schools. Candidates should keep their CTET/STET " +
				"certificates and documents ready for the online application window.",
			BodyHindi: "बिहार लोक सेवा आयोग द्वारा प्राथमिक, मध्य और माध्यमिक विद्यालयों की रिक्तियों के लिए " +
				"TRE 4.0 अधिसूचना जारी होने की उम्मीद है। अभ्यर्थी ऑनलाइन आवेदन के लिए अपने CTET/STET " +
				"प्रमाणपत्र और दस्तावेज़ तैयार रखें।",
			Metadata: map[string]string{
				domain.MetaExamType: "BPSC_TRE",
				domain.MetaCategory: "notification",
				domain.MetaDate:     "2025-08-10",
			},
		},
		{
			ID:         "news-stet-result",
			Type:       domain.TypeNews,
			Title:      "STET Result Declared on BSEB Portal",
			TitleHindi: "BSEB पोर्टल पर STET परिणाम घोषित",
			Body: "The Bihar School Examination Board has declared the STET result on its official portal. " +
				"Qualified candidates can download their eligibility certificates using their roll number " +
				"and date of birth.",
			BodyHindi: "बिहार विद्यालय परीक्षा समिति ने अपने आधिकारिक पोर्टल पर STET परिणाम घोषित कर दिया है। " +
				"उत्तीर्ण अभ्यर्थी रोल नंबर और जन्मतिथि से अपना पात्रता प्रमाणपत्र डाउनलोड कर सकते हैं।",
			Metadata: map[string]string{
				domain.MetaExamType: "STET",
				domain.MetaCategory: "result",
				domain.MetaDate:     "2025-07-22",
			},
		},
		{
			ID:         "news-tre-admit-card",
			Type:       domain.TypeNews,
			Title:      "TRE Admit Card Download Window Opens",
			TitleHindi: "TRE प्रवेश पत्र डाउनलोड विंडो खुली",
			Body: "BPSC has opened the admit card download window for the upcoming teacher recruitment exam. " +
				"Admit cards carry the exam centre, shift timing and reporting instructions.",
			BodyHindi: "BPSC ने आगामी शिक्षक भर्ती परीक्षा के लिए प्रवेश पत्र डाउनलोड विंडो खोल दी है। प्रवेश " +
				"पत्र में परीक्षा केंद्र, पाली का समय और रिपोर्टिंग निर्देश दिए गए हैं।",
			Metadata: map[string]string{
				domain.MetaExamType: "BPSC_TRE",
				domain.MetaCategory: "admit-card",
				domain.MetaDate:     "2025-08-28",
			},
		},
	}
}
