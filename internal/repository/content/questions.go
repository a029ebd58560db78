package content

import (
	"strings"

	"github.com/shikshasetu/examsearch/internal/domain"
)

// question is the raw question-bank shape before flattening. Body text for
// search is the options plus the explanation, joined per language.
type question struct {
	id          string
	text        string
	textHindi   string
	options     []string
	optionsHi   []string
	answer      int
	explanation string
	explainHi   string
	examType    string
	topic       string
	difficulty  string
}

// questionRecords flattens every question bank into searchable records.
func questionRecords() []domain.SearchableRecord {
	banks := [][]question{stetPaper1Questions, stetPaper2Questions, bpscTREQuestions}

	var records []domain.SearchableRecord
	for _, bank := range banks {
		for _, q := range bank {
			records = append(records, q.toRecord())
		}
	}
	return records
}

func (q question) toRecord() domain.SearchableRecord {
	return domain.SearchableRecord{
		ID:         q.id,
		Type:       domain.TypeQuestion,
		Title:      q.text,
		TitleHindi: q.textHindi,
		Body:       strings.Join(q.options, " ") + " " + q.explanation,
		BodyHindi:  strings.Join(q.optionsHi, " ") + " " + q.explainHi,
		Metadata: map[string]string{
			domain.MetaExamType:   q.examType,
			domain.MetaTopic:      q.topic,
			domain.MetaDifficulty: q.difficulty,
		},
	}
}

var stetPaper1Questions = []question{
	{
		id:          "stet1-q1",
		text:        "According to Piaget, at which stage does a child develop object permanence?",
		textHindi:   "पियाजे के अनुसार, बच्चा किस अवस्था में वस्तु स्थायित्व विकसित करता है?",
		options:     []string{"Sensorimotor stage", "Preoperational stage", "Concrete operational stage", "Formal operational stage"},
		optionsHi:   []string{"संवेदी-प्रेरक अवस्था", "पूर्व-संक्रियात्मक अवस्था", "मूर्त संक्रियात्मक अवस्था", "औपचारिक संक्रियात्मक अवस्था"},
		answer:      0,
		explanation: "Object permanence develops during the sensorimotor stage, typically between 8 and 12 months of age.",
		explainHi:   "वस्तु स्थायित्व संवेदी-प्रेरक अवस्था में विकसित होता है, सामान्यतः 8 से 12 माह की आयु में।",
		examType:    "STET",
		topic:       "Child Development",
		difficulty:  "medium",
	},
	{
		id:          "stet1-q2",
		text:        "Which of the following is a formative assessment tool?",
		textHindi:   "निम्नलिखित में से कौन एक रचनात्मक मूल्यांकन उपकरण है?",
		options:     []string{"Annual examination", "Classroom observation", "Board examination", "Entrance test"},
		optionsHi:   []string{"वार्षिक परीक्षा", "कक्षा अवलोकन", "बोर्ड परीक्षा", "प्रवेश परीक्षा"},
		answer:      1,
		explanation: "Classroom observation is continuous and diagnostic, which makes it formative rather than summative.",
		explainHi:   "कक्षा अवलोकन सतत और नैदानिक होता है, इसलिए यह योगात्मक नहीं बल्कि रचनात्मक मूल्यांकन है।",
		examType:    "STET",
		topic:       "Pedagogy",
		difficulty:  "easy",
	},
	{
		id:          "stet1-q3",
		text:        "The LCM of 12 and 18 is:",
		textHindi:   "12 और 18 का लघुत्तम समापवर्त्य है:",
		options:     []string{"36", "54", "72", "6"},
		optionsHi:   []string{"36", "54", "72", "6"},
		answer:      0,
		explanation: "12 = 2²×3 and 18 = 2×3², so the LCM is 2²×3² = 36.",
		explainHi:   "12 = 2²×3 तथा 18 = 2×3², अतः लघुत्तम समापवर्त्य 2²×3² = 36 है।",
		examType:    "STET",
		topic:       "Mathematics",
		difficulty:  "easy",
	},
	{
		id:          "stet1-q4",
		text:        "Vygotsky's concept of the zone of proximal development emphasises:",
		textHindi:   "वाइगोत्स्की की समीपस्थ विकास क्षेत्र की अवधारणा किस पर बल देती है?",
		options:     []string{"Independent learning", "Learning with guidance", "Rote memorisation", "Innate abilities"},
		optionsHi:   []string{"स्वतंत्र अधिगम", "मार्गदर्शन के साथ अधिगम", "रटकर याद करना", "जन्मजात क्षमताएँ"},
		answer:      1,
		explanation: "The zone of proximal development is the gap between what a learner can do alone and what they can do with support from a more knowledgeable other.",
		explainHi:   "समीपस्थ विकास क्षेत्र वह अंतर है जो शिक्षार्थी अकेले कर सकता है और जो वह किसी जानकार व्यक्ति के सहयोग से कर सकता है।",
		examType:    "STET",
		topic:       "Child Development",
		difficulty:  "medium",
	},
}

var stetPaper2Questions = []question{
	{
		id:          "stet2-q1",
		text:        "Which article of the Indian Constitution deals with the Right to Education?",
		textHindi:   "भारतीय संविधान का कौन-सा अनुच्छेद शिक्षा के अधिकार से संबंधित है?",
		options:     []string{"Article 19", "Article 21A", "Article 32", "Article 44"},
		optionsHi:   []string{"अनुच्छेद 19", "अनुच्छेद 21A", "अनुच्छेद 32", "अनुच्छेद 44"},
		answer:      1,
		explanation: "Article 21A, inserted by the 86th Amendment, makes free and compulsory education a fundamental right for children aged 6 to 14.",
		explainHi:   "86वें संशोधन द्वारा जोड़ा गया अनुच्छेद 21A, 6 से 14 वर्ष के बच्चों के लिए निःशुल्क और अनिवार्य शिक्षा को मौलिक अधिकार बनाता है।",
		examType:    "STET",
		topic:       "Social Science",
		difficulty:  "medium",
	},
	{
		id:          "stet2-q2",
		text:        "Photosynthesis primarily takes place in which part of the plant cell?",
		textHindi:   "प्रकाश संश्लेषण मुख्यतः पादप कोशिका के किस भाग में होता है?",
		options:     []string{"Mitochondria", "Chloroplast", "Nucleus", "Ribosome"},
		optionsHi:   []string{"माइटोकॉन्ड्रिया", "क्लोरोप्लास्ट", "केन्द्रक", "राइबोसोम"},
		answer:      1,
		explanation: "Chloroplasts contain chlorophyll, the pigment that captures light energy for photosynthesis.",
		explainHi:   "क्लोरोप्लास्ट में क्लोरोफिल होता है, जो प्रकाश संश्लेषण के लिए प्रकाश ऊर्जा ग्रहण करता है।",
		examType:    "STET",
		topic:       "Science",
		difficulty:  "easy",
	},
	{
		id:          "stet2-q3",
		text:        "Who wrote the Hindi epic 'Kamayani'?",
		textHindi:   "हिंदी महाकाव्य 'कामायनी' के रचयिता कौन हैं?",
		options:     []string{"Jaishankar Prasad", "Suryakant Tripathi Nirala", "Mahadevi Verma", "Sumitranandan Pant"},
		optionsHi:   []string{"जयशंकर प्रसाद", "सूर्यकांत त्रिपाठी निराला", "महादेवी वर्मा", "सुमित्रानंदन पंत"},
		answer:      0,
		explanation: "Kamayani (1936) is Jaishankar Prasad's masterpiece and a landmark of Chhayavad poetry.",
		explainHi:   "कामायनी (1936) जयशंकर प्रसाद की कालजयी रचना और छायावाद की प्रमुख कृति है।",
		examType:    "STET",
		topic:       "Hindi",
		difficulty:  "medium",
	},
}

var bpscTREQuestions = []question{
	{
		id:          "tre-q1",
		text:        "The Bihar Panchayati Raj system has how many tiers?",
		textHindi:   "बिहार पंचायती राज व्यवस्था में कितने स्तर हैं?",
		options:     []string{"Two", "Three", "Four", "Five"},
		optionsHi:   []string{"दो", "तीन", "चार", "पाँच"},
		answer:      1,
		explanation: "Bihar follows the three-tier structure: Gram Panchayat, Panchayat Samiti and Zila Parishad.",
		explainHi:   "बिहार में त्रिस्तरीय संरचना है: ग्राम पंचायत, पंचायत समिति और जिला परिषद।",
		examType:    "BPSC_TRE",
		topic:       "General Studies",
		difficulty:  "easy",
	},
	{
		id:          "tre-q2",
		text:        "Which river is known as the 'Sorrow of Bihar'?",
		textHindi:   "किस नदी को 'बिहार का शोक' कहा जाता है?",
		options:     []string{"Ganga", "Kosi", "Gandak", "Son"},
		optionsHi:   []string{"गंगा", "कोसी", "गंडक", "सोन"},
		answer:      1,
		explanation: "The Kosi is called the Sorrow of Bihar because of its frequent course changes and devastating floods.",
		explainHi:   "कोसी नदी को बिहार का शोक कहा जाता है क्योंकि यह बार-बार मार्ग बदलती है और विनाशकारी बाढ़ लाती है।",
		examType:    "BPSC_TRE",
		topic:       "General Studies",
		difficulty:  "easy",
	},
	{
		id:          "tre-q3",
		text:        "In the BPSC TRE, the negative marking for a wrong answer is:",
		textHindi:   "BPSC TRE में गलत उत्तर के लिए नकारात्मक अंकन है:",
		options:     []string{"One-third mark", "One-fourth mark", "Half mark", "No negative marking"},
		optionsHi:   []string{"एक-तिहाई अंक", "एक-चौथाई अंक", "आधा अंक", "कोई नकारात्मक अंकन नहीं"},
		answer:      3,
		explanation: "BPSC teacher recruitment papers have no negative marking, unlike the main BPSC combined examination.",
		explainHi:   "BPSC शिक्षक भर्ती के प्रश्नपत्रों में नकारात्मक अंकन नहीं है, जबकि मुख्य BPSC संयुक्त परीक्षा में होता है।",
		examType:    "BPSC_TRE",
		topic:       "Exam Pattern",
		difficulty:  "easy",
	},
}
