package content

import "github.com/shikshasetu/examsearch/internal/domain"

// examInfoRecords returns the hand-written exam overview, syllabus and
// pass-mark snippets.
func examInfoRecords() []domain.SearchableRecord {
	return []domain.SearchableRecord{
		{
			ID:         "exam-stet",
			Type:       domain.TypeExam,
			Title:      "STET Exam Information",
			TitleHindi: "STET परीक्षा जानकारी",
			Body: "The Bihar Secondary Teacher Eligibility Test (STET) is conducted by the Bihar School " +
				"Examination Board (BSEB) for candidates aspiring to teach in secondary (Paper 1, classes 9-10) " +
				"and higher secondary (Paper 2, classes 11-12) schools. Each paper has 150 questions worth " +
				"150 marks with a duration of 2 hours 30 minutes. There is no negative marking. The STET " +
				"qualifying certificate is valid for the lifetime of the candidate.",
			BodyHindi: "बिहार माध्यमिक शिक्षक पात्रता परीक्षा (STET) बिहार विद्यालय परीक्षा समिति (BSEB) द्वारा " +
				"माध्यमिक (पेपर 1, कक्षा 9-10) और उच्च माध्यमिक (पेपर 2, कक्षा 11-12) विद्यालयों में पढ़ाने के " +
				"इच्छुक अभ्यर्थियों के लिए आयोजित की जाती है। प्रत्येक पेपर में 150 प्रश्न, 150 अंक और अवधि " +
				"2 घंटे 30 मिनट होती है। नकारात्मक अंकन नहीं है। STET उत्तीर्णता प्रमाणपत्र आजीवन वैध है।",
			Metadata: map[string]string{
				domain.MetaExamType: "STET",
				domain.MetaTopic:    "Exam Overview",
			},
		},
		{
			ID:         "exam-bpsc-tre",
			Type:       domain.TypeExam,
			Title:      "BPSC Teacher Recruitment Exam (TRE) Information",
			TitleHindi: "BPSC शिक्षक भर्ती परीक्षा (TRE) जानकारी",
			Body: "The Bihar Public Service Commission conducts the Teacher Recruitment Exam (TRE) to appoint " +
				"school teachers in government schools across Bihar. TRE 4.0 covers primary, middle, secondary " +
				"and higher secondary levels. The paper combines a language section (qualifying) with general " +
				"studies and the subject concerned. There is no negative marking in TRE papers.",
			BodyHindi: "बिहार लोक सेवा आयोग बिहार के सरकारी विद्यालयों में शिक्षकों की नियुक्ति के लिए शिक्षक " +
				"भर्ती परीक्षा (TRE) आयोजित करता है। TRE 4.0 में प्राथमिक, मध्य, माध्यमिक और उच्च माध्यमिक " +
				"स्तर शामिल हैं। प्रश्नपत्र में भाषा खंड (अर्हक), सामान्य अध्ययन और संबंधित विषय होते हैं। " +
				"TRE के प्रश्नपत्रों में नकारात्मक अंकन नहीं है।",
			Metadata: map[string]string{
				domain.MetaExamType: "BPSC_TRE",
				domain.MetaTopic:    "Exam Overview",
			},
		},
		{
			ID:         "syllabus-stet-p1",
			Type:       domain.TypeSyllabus,
			Title:      "STET Paper 1 Syllabus",
			TitleHindi: "STET पेपर 1 पाठ्यक्रम",
			Body: "STET Paper 1 covers the chosen subject (100 marks) plus teaching aptitude, general awareness, " +
				"logical reasoning and child development and pedagogy (50 marks). Subjects include Hindi, Urdu, " +
				"Sanskrit, English, Mathematics, Science and Social Science for classes 9 and 10.",
			BodyHindi: "STET पेपर 1 में चयनित विषय (100 अंक) तथा शिक्षण अभिक्षमता, सामान्य जागरूकता, तार्किक " +
				"तर्कशक्ति और बाल विकास एवं शिक्षाशास्त्र (50 अंक) शामिल हैं। कक्षा 9 और 10 के लिए विषयों में " +
				"हिंदी, उर्दू, संस्कृत, अंग्रेज़ी, गणित, विज्ञान और सामाजिक विज्ञान आते हैं।",
			Metadata: map[string]string{
				domain.MetaExamType: "STET",
				domain.MetaTopic:    "Syllabus",
			},
		},
		{
			ID:         "syllabus-bpsc-tre",
			Type:       domain.TypeSyllabus,
			Title:      "BPSC TRE 4.0 Syllabus and Pattern",
			TitleHindi: "BPSC TRE 4.0 पाठ्यक्रम और प्रारूप",
			Body: "The TRE 4.0 paper has three parts: Part I language (English and Hindi/Urdu/Bengali, 30 marks, " +
				"qualifying at 30%), Part II general studies (40 marks) and Part III the concerned subject " +
				"(80 marks). Total 150 questions in 2 hours 30 minutes, no negative marking.",
			BodyHindi: "TRE 4.0 के प्रश्नपत्र में तीन भाग हैं: भाग I भाषा (अंग्रेज़ी और हिंदी/उर्दू/बांग्ला, 30 अंक, " +
				"30% पर अर्हक), भाग II सामान्य अध्ययन (40 अंक) और भाग III संबंधित विषय (80 अंक)। कुल 150 प्रश्न, " +
				"2 घंटे 30 मिनट, नकारात्मक अंकन नहीं।",
			Metadata: map[string]string{
				domain.MetaExamType: "BPSC_TRE",
				domain.MetaTopic:    "Syllabus",
			},
		},
		{
			ID:         "passmarks-stet",
			Type:       domain.TypeExam,
			Title:      "STET Qualifying Marks by Category",
			TitleHindi: "STET श्रेणीवार उत्तीर्णांक",
			Body: "STET qualifying percentages: General 50%, Backward Classes 45.5%, OBC 42.5%, " +
				"SC/ST 40%, Differently-abled 40%, Women 40%. Qualifying STET does not guarantee appointment; " +
				"it establishes eligibility for teacher recruitment.",
			BodyHindi: "STET उत्तीर्णता प्रतिशत: सामान्य 50%, पिछड़ा वर्ग 45.5%, अत्यंत पिछड़ा वर्ग 42.5%, " +
				"अनुसूचित जाति/जनजाति 40%, दिव्यांग 40%, महिला 40%। STET उत्तीर्ण करना नियुक्ति की गारंटी नहीं " +
				"है; यह शिक्षक भर्ती के लिए पात्रता स्थापित करता है।",
			Metadata: map[string]string{
				domain.MetaExamType:   "STET",
				domain.MetaTopic:      "Qualifying Marks",
				domain.MetaPercentage: "50",
			},
		},
	}
}

// eligibilityRecords returns the eligibility notes, collected last.
func eligibilityRecords() []domain.SearchableRecord {
	return []domain.SearchableRecord{
		{
			ID:         "elig-stet",
			Type:       domain.TypeEligibility,
			Title:      "STET Eligibility Criteria",
			TitleHindi: "STET पात्रता मानदंड",
			Body: "For STET Paper 1 a candidate needs a bachelor's degree with at least 50% marks and B.Ed. " +
				"For Paper 2 a master's degree with at least 50% marks and B.Ed is required. The upper age " +
				"limit is 37 years for general male candidates with relaxation for reserved categories and women.",
			BodyHindi: "STET पेपर 1 के लिए न्यूनतम 50% अंकों के साथ स्नातक और B.Ed आवश्यक है। पेपर 2 के लिए " +
				"न्यूनतम 50% अंकों के साथ स्नातकोत्तर और B.Ed आवश्यक है। सामान्य पुरुष अभ्यर्थियों के लिए " +
				"अधिकतम आयु सीमा 37 वर्ष है, आरक्षित वर्गों और महिलाओं के लिए छूट है।",
			Metadata: map[string]string{
				domain.MetaExamType: "STET",
				domain.MetaTopic:    "Eligibility",
			},
		},
		{
			ID:         "elig-bpsc-tre",
			Type:       domain.TypeEligibility,
			Title:      "BPSC TRE Eligibility Criteria",
			TitleHindi: "BPSC TRE पात्रता मानदंड",
			Body: "BPSC TRE candidates must have passed the corresponding eligibility test (CTET or STET) and " +
				"hold the prescribed academic and training qualifications for the level applied. Bihar domicile " +
				"is required for reservation benefits. The age window is 18 to 37 years with category relaxations.",
			BodyHindi: "BPSC TRE अभ्यर्थियों को संबंधित पात्रता परीक्षा (CTET या STET) उत्तीर्ण होना चाहिए और " +
				"आवेदित स्तर के लिए निर्धारित शैक्षणिक व प्रशिक्षण योग्यता होनी चाहिए। आरक्षण लाभ के लिए बिहार " +
				"का निवासी होना आवश्यक है। आयु सीमा 18 से 37 वर्ष है, श्रेणीगत छूट सहित।",
			Metadata: map[string]string{
				domain.MetaExamType: "BPSC_TRE",
				domain.MetaTopic:    "Eligibility",
			},
		},
	}
}
