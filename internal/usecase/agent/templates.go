package agent

// template is one canned responder: an answer paragraph and follow-up
// questions in both languages.
type template struct {
	answerEN    string
	answerHI    string
	followUpsEN []string
	followUpsHI []string
}

func (t template) answer(language string) string {
	if language == "hi" {
		return t.answerHI
	}
	return t.answerEN
}

func (t template) followUps(language string) []string {
	if language == "hi" {
		return append([]string(nil), t.followUpsHI...)
	}
	return append([]string(nil), t.followUpsEN...)
}

var stetTemplate = template{
	answerEN: "The Bihar STET (Secondary Teacher Eligibility Test) is conducted by BSEB for " +
		"candidates who want to teach classes 9-10 (Paper 1) or 11-12 (Paper 2). Each paper " +
		"has 150 questions for 150 marks over 2 hours 30 minutes with no negative marking. " +
		"General category candidates need 50% to qualify, with relaxed thresholds for " +
		"reserved categories. The qualifying certificate is valid for life.",
	answerHI: "बिहार STET (माध्यमिक शिक्षक पात्रता परीक्षा) BSEB द्वारा कक्षा 9-10 (पेपर 1) या " +
		"11-12 (पेपर 2) पढ़ाने के इच्छुक अभ्यर्थियों के लिए आयोजित की जाती है। प्रत्येक पेपर में " +
		"150 प्रश्न, 150 अंक और 2 घंटे 30 मिनट की अवधि होती है, नकारात्मक अंकन नहीं है। सामान्य " +
		"वर्ग के लिए 50% उत्तीर्णांक आवश्यक है, आरक्षित वर्गों के लिए छूट है। प्रमाणपत्र आजीवन वैध है।",
	followUpsEN: []string{
		"What is the STET Paper 1 syllabus?",
		"What are the STET qualifying marks by category?",
		"What is the STET eligibility criteria?",
	},
	followUpsHI: []string{
		"STET पेपर 1 का पाठ्यक्रम क्या है?",
		"STET के श्रेणीवार उत्तीर्णांक क्या हैं?",
		"STET की पात्रता क्या है?",
	},
}

var bpscTemplate = template{
	answerEN: "The BPSC Teacher Recruitment Exam appoints teachers to Bihar government schools. " +
		"Candidates must hold the relevant eligibility certificate (CTET or STET) and the " +
		"prescribed training qualification. The paper combines a qualifying language section " +
		"with general studies and the subject concerned, and there is no negative marking.",
	answerHI: "BPSC शिक्षक भर्ती परीक्षा के माध्यम से बिहार के सरकारी विद्यालयों में शिक्षकों की " +
		"नियुक्ति होती है। अभ्यर्थियों के पास संबंधित पात्रता प्रमाणपत्र (CTET या STET) और निर्धारित " +
		"प्रशिक्षण योग्यता होनी चाहिए। प्रश्नपत्र में अर्हक भाषा खंड, सामान्य अध्ययन और संबंधित विषय " +
		"शामिल हैं, और नकारात्मक अंकन नहीं है।",
	followUpsEN: []string{
		"What is the BPSC TRE eligibility criteria?",
		"What is the BPSC TRE exam pattern?",
		"Is there negative marking in BPSC TRE?",
	},
	followUpsHI: []string{
		"BPSC TRE की पात्रता क्या है?",
		"BPSC TRE का परीक्षा प्रारूप क्या है?",
		"क्या BPSC TRE में नकारात्मक अंकन है?",
	},
}

var treTemplate = template{
	answerEN: "TRE 4.0 is the fourth round of the BPSC Teacher Recruitment Exam, covering " +
		"primary, middle, secondary and higher secondary posts. The paper has three parts: " +
		"language (30 marks, qualifying at 30%), general studies (40 marks) and the subject " +
		"concerned (80 marks) — 150 questions in 2 hours 30 minutes, no negative marking.",
	answerHI: "TRE 4.0, BPSC शिक्षक भर्ती परीक्षा का चौथा चरण है, जिसमें प्राथमिक, मध्य, माध्यमिक " +
		"और उच्च माध्यमिक पद शामिल हैं। प्रश्नपत्र में तीन भाग हैं: भाषा (30 अंक, 30% पर अर्हक), " +
		"सामान्य अध्ययन (40 अंक) और संबंधित विषय (80 अंक) — 150 प्रश्न, 2 घंटे 30 मिनट, " +
		"नकारात्मक अंकन नहीं।",
	followUpsEN: []string{
		"When will the TRE 4.0 notification be released?",
		"What documents are needed for the TRE application?",
		"What is the TRE 4.0 syllabus?",
	},
	followUpsHI: []string{
		"TRE 4.0 की अधिसूचना कब जारी होगी?",
		"TRE आवेदन के लिए कौन से दस्तावेज़ चाहिए?",
		"TRE 4.0 का पाठ्यक्रम क्या है?",
	},
}

var genericTemplate = template{
	answerEN: "Bihar conducts two main teacher exams: the STET eligibility test run by BSEB " +
		"and the BPSC Teacher Recruitment Exam (TRE) for actual appointments. Qualifying STET " +
		"or CTET is a prerequisite for applying to TRE. Ask about a specific exam for details " +
		"on syllabus, eligibility or important dates.",
	answerHI: "बिहार में दो मुख्य शिक्षक परीक्षाएँ होती हैं: BSEB द्वारा आयोजित STET पात्रता परीक्षा " +
		"और नियुक्ति के लिए BPSC शिक्षक भर्ती परीक्षा (TRE)। TRE में आवेदन के लिए STET या CTET " +
		"उत्तीर्ण होना आवश्यक है। पाठ्यक्रम, पात्रता या महत्वपूर्ण तिथियों के लिए किसी विशेष परीक्षा " +
		"के बारे में पूछें।",
	followUpsEN: []string{
		"What is the Bihar STET exam?",
		"What is the BPSC Teacher Recruitment Exam?",
		"Which exam should I take to become a teacher in Bihar?",
	},
	followUpsHI: []string{
		"बिहार STET परीक्षा क्या है?",
		"BPSC शिक्षक भर्ती परीक्षा क्या है?",
		"बिहार में शिक्षक बनने के लिए कौन सी परीक्षा दूँ?",
	},
}
