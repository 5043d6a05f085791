package store

import "project/backend/models"

// Initial site content. Every bilingual field carries both variants;
// the locale package never falls back, so a missing English string here
// would surface as an empty field in the English site.

func seedCourses() []models.Course {
	return []models.Course{
		{
			ID:            "7-day-build-camp",
			Title:         "مخيم بناء الذكاء الاصطناعي (7 أيام)",
			TitleEn:       "The 7-Day AI Build Camp",
			Subtitle:      "من الفكرة إلى منتج SaaS جاهز",
			SubtitleEn:    "From idea to a working SaaS product",
			Image:         "https://images.unsplash.com/photo-1593508512255-86ab42a8e620?q=80&w=1200&auto=format&fit=crop",
			Tags:          []string{"مكثف", "مؤسسون", "SaaS"},
			TagsEn:        []string{"Intensive", "Founders", "SaaS"},
			Description:   "انتقل من مجرد فكرة إلى نموذج أولي وظيفي لخدمة برمجية مدعومة بالذكاء الاصطناعي في أسبوع واحد فقط. تعلم هندسة الذكاء الاصطناعي وتكامل التطبيقات.",
			DescriptionEn: "Go from a raw idea to a functional AI-powered SaaS prototype in a single week. Learn AI architecture and application integration.",
			Rating:        "5.0",
			Duration:      "7 أيام",
			DurationEn:    "7 days",
			AgeGroup:      "+16 / الكبار",
			AgeGroupEn:    "16+ / Adults",
			Price:         "4900",
			Schedule:      "يومياً 9:00 ص - 6:00 م",
			ScheduleEn:    "Daily 9:00 AM - 6:00 PM",
			Features: []string{
				"تصميم هندسة الذكاء الاصطناعي",
				"تكامل واجهات برمجة التطبيقات ونماذج LLM",
				"بناء حلول بدون كود للنمو السريع",
				"يوم العرض والتقديم للمستثمرين",
			},
			FeaturesEn: []string{
				"AI architecture design",
				"API and LLM integration",
				"No-code builds for rapid growth",
				"Demo day and investor pitch",
			},
			LearningOutcomes: []models.LearningOutcome{
				{
					Title:         "أساسيات نماذج اللغة",
					TitleEn:       "LLM Fundamentals",
					Description:   "إتقان هندسة الأوامر (Prompt Engineering) ومفاهيم الضبط الدقيق ومعماريات RAG.",
					DescriptionEn: "Master prompt engineering, fine-tuning concepts and RAG architectures.",
				},
				{
					Title:         "تقنيات SaaS",
					TitleEn:       "SaaS Stack",
					Description:   "البناء باستخدام Next.js و Tailwind و Supabase للنشر السريع.",
					DescriptionEn: "Build with Next.js, Tailwind and Supabase for rapid shipping.",
				},
				{
					Title:         "إتقان الـ API",
					TitleEn:       "API Mastery",
					Description:   "الاتصال بنماذج OpenAI و Anthropic ونقاط النهاية المتخصصة.",
					DescriptionEn: "Connect to OpenAI and Anthropic models and specialized endpoints.",
				},
				{
					Title:         "إطلاق المنتج",
					TitleEn:       "Product Launch",
					Description:   "تعلم كيفية النشر على Vercel وإعداد Stripe لتحقيق الأرباح.",
					DescriptionEn: "Learn to deploy on Vercel and wire up Stripe for monetization.",
				},
			},
			Testimonials: []models.Testimonial{
				{
					Name:   "سامي منصوري",
					Role:   "مؤسس شركة ناشئة",
					Quote:  "بنيت مشروعي في 6 أيام. التركيز على التنفيذ الفعلي بدلاً من النظريات هو بالضبط ما يحتاجه التعليم التقني.",
					Avatar: "https://i.pravatar.cc/150?u=sami",
				},
				{
					Name:   "ياسمين العلوي",
					Role:   "مديرة منتج",
					Quote:  "فهمت أخيراً كيف يمكن دمج الذكاء الاصطناعي في سير عملنا الحالي. تدريب مكثف بنتائج مذهلة.",
					Avatar: "https://i.pravatar.cc/150?u=yasmine",
				},
			},
			Sessions: []models.Session{
				{
					Date:     "12 أكتوبر - 18 أكتوبر",
					DateEn:   "Oct 12 - Oct 18",
					Time:     "09:00 - 18:00",
					TimeEn:   "09:00 - 18:00",
					Status:   models.SessionFillingFast,
					StatusAr: "المقاعد محدودة",
					StatusEn: "Filling Fast",
				},
				{
					Date:     "05 نوفمبر - 11 نوفمبر",
					DateEn:   "Nov 05 - Nov 11",
					Time:     "09:00 - 18:00",
					TimeEn:   "09:00 - 18:00",
					Status:   models.SessionOpen,
					StatusAr: "متاح",
					StatusEn: "Open",
				},
			},
		},
		{
			ID:            "young-innovators",
			Title:         "المبتكرون الصغار في الذكاء الاصطناعي",
			TitleEn:       "Young AI Innovators",
			Subtitle:      "برمج، ابدع، تحكم",
			SubtitleEn:    "Code, create, take control",
			Image:         "https://images.unsplash.com/photo-1531206715517-5c0ba140b2b8?q=80&w=1200&auto=format&fit=crop",
			Tags:          []string{"أطفال", "برمجة", "إبداع"},
			TagsEn:        []string{"Kids", "Coding", "Creativity"},
			Description:   "مسار مصمم خصيصاً للعقول الشابة لفهم منطق الذكاء الاصطناعي من خلال تطوير الألعاب ورواية القصص التفاعلية.",
			DescriptionEn: "A track built for young minds to grasp AI logic through game development and interactive storytelling.",
			Rating:        "4.9",
			Duration:      "4 أسابيع",
			DurationEn:    "4 weeks",
			AgeGroup:      "8 - 12 سنة",
			AgeGroupEn:    "Ages 8 - 12",
			Price:         "2500",
			Schedule:      "الثلاثاء والخميس، 4:00 م",
			ScheduleEn:    "Tuesday & Thursday, 4:00 PM",
			Features: []string{
				"البرمجة المنطقية المرئية",
				"فن توليد الصور بالذكاء الاصطناعي",
				"أساسيات تصميم الألعاب",
				"رواية القصص التفاعلية",
			},
			FeaturesEn: []string{
				"Visual logic programming",
				"Generative AI art",
				"Game design basics",
				"Interactive storytelling",
			},
			LearningOutcomes: []models.LearningOutcome{
				{
					Title:         "التفكير المنطقي",
					TitleEn:       "Logical Thinking",
					Description:   "تفكيك المشكلات المعقدة إلى خطوات صغيرة قابلة للحل.",
					DescriptionEn: "Break complex problems into small solvable steps.",
				},
				{
					Title:         "إبداع فنون الذكاء الاصطناعي",
					TitleEn:       "AI Art Creativity",
					Description:   "استخدام أدوات مثل Midjourney بأمان للتعبير عن الإبداع.",
					DescriptionEn: "Use tools like Midjourney safely to express creativity.",
				},
				{
					Title:         "سكراتش وبايثون",
					TitleEn:       "Scratch & Python",
					Description:   "تعلم أساسيات البرمجة باستخدام أدوات مرئية ونصية.",
					DescriptionEn: "Learn programming basics with visual and text tools.",
				},
				{
					Title:         "الروبوتات الجماعية",
					TitleEn:       "Team Robotics",
					Description:   "التعاون مع الأقران لحل تحديات ملموسة بالذكاء الاصطناعي.",
					DescriptionEn: "Collaborate with peers on hands-on AI challenges.",
				},
			},
			Testimonials: []models.Testimonial{
				{
					Name:   "والدة أحمد",
					Role:   "ولي أمر",
					Quote:  "كان ابني يكتفي باللعب، الآن يحاول البناء. التغيير في العقلية كان مذهلاً.",
					Avatar: "https://i.pravatar.cc/150?u=ahmedmom",
				},
				{
					Name:   "سارة ب.",
					Role:   "طالبة (11 سنة)",
					Quote:  "صناعة فنون الذكاء الاصطناعي كانت الجزء المفضل لدي. تعلمت أن البرمجة هي قوة خارقة!",
					Avatar: "https://i.pravatar.cc/150?u=sarah",
				},
			},
			Sessions: []models.Session{
				{
					Date:     "15 أكتوبر - 12 نوفمبر",
					DateEn:   "Oct 15 - Nov 12",
					Time:     "16:00 - 17:30",
					TimeEn:   "16:00 - 17:30",
					Status:   models.SessionWaitlist,
					StatusAr: "قائمة الانتظار",
					StatusEn: "Waitlist",
				},
				{
					Date:     "20 نوفمبر - 18 ديسمبر",
					DateEn:   "Nov 20 - Dec 18",
					Time:     "16:00 - 17:30",
					TimeEn:   "16:00 - 17:30",
					Status:   models.SessionOpen,
					StatusAr: "متاح",
					StatusEn: "Open",
				},
			},
		},
	}
}

func seedSettings() models.SiteSettings {
	return models.SiteSettings{
		AcademyName:       "أكاديمية الذكاء الاصطناعي",
		AcademyNameEn:     "The AI Academy",
		ContactEmail:      "contact@techkids.ma",
		WhatsappNumber:    "+212 600 000 000",
		HeroTitle:         "احلـم. ابـنِ. انطلـق.",
		HeroTitleEn:       "Dream. Build. Launch.",
		HeroDescription:   "تمكين الأطفال من إتقان الذكاء الاصطناعي، برمجة أحلامهم، وحل مشكلات العالم الحقيقي بأدوات الغد.",
		HeroDescriptionEn: "Empowering kids to master AI, code their dreams, and solve real-world problems with tomorrow's tools.",
		HeroImage:         "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?q=80&w=1200",
		BusinessImage:     "https://images.unsplash.com/photo-1460925895917-afdab827c52f?q=80&w=1200",
		Buildables: []string{
			"روبوت محادثة ذكي",
			"لعبة تفاعلية",
			"مساعد دراسة شخصي",
			"متجر إلكتروني مؤتمت",
		},
		BuildablesEn: []string{
			"A smart chatbot",
			"An interactive game",
			"A personal study assistant",
			"An automated online store",
		},
	}
}

func seedPartners() []models.Partner {
	return []models.Partner{
		{ID: "1", Name: "Google for Startups", Logo: "https://upload.wikimedia.org/wikipedia/commons/2/2f/Google_2015_logo.svg"},
		{ID: "2", Name: "OpenAI", Logo: "https://upload.wikimedia.org/wikipedia/commons/4/4d/OpenAI_Logo.svg"},
		{ID: "3", Name: "NVIDIA", Logo: "https://upload.wikimedia.org/wikipedia/commons/2/21/Nvidia_logo.svg"},
		{ID: "4", Name: "Microsoft Azure", Logo: "https://upload.wikimedia.org/wikipedia/commons/f/fa/Microsoft_Azure.svg"},
	}
}

func seedPortfolio() []models.PortfolioProject {
	return []models.PortfolioProject{
		{
			ID:            "p1",
			Title:         "نظام إدارة التعليم الذكي",
			TitleEn:       "Smart Learning Management System",
			Client:        "مجموعة مدارس النخبة",
			ClientEn:      "Elite Schools Group",
			Category:      "SaaS / AI",
			CategoryEn:    "SaaS / AI",
			Image:         "https://images.unsplash.com/photo-1460925895917-afdab827c52f?q=80&w=800",
			Description:   "منصة متكاملة لأتمتة المهام الإدارية وتخصيص تجربة التعلم لكل طالب باستخدام الذكاء الاصطناعي.",
			DescriptionEn: "An end-to-end platform automating administrative work and personalizing learning for every student with AI.",
		},
		{
			ID:            "p2",
			Title:         "مساعد خدمة العملاء الآلي",
			TitleEn:       "Automated Customer Service Assistant",
			Client:        "شركة تأمين كبرى",
			ClientEn:      "A major insurance company",
			Category:      "AI Chatbot",
			CategoryEn:    "AI Chatbot",
			Image:         "https://images.unsplash.com/photo-1531746790731-6c087fecd05a?q=80&w=800",
			Description:   "بوت ذكي قادر على معالجة المطالبات والرد على استفسارات العملاء بـ ١٢ لغة مختلفة بدقة ٩٨٪.",
			DescriptionEn: "A smart bot handling claims and customer questions in 12 languages with 98% accuracy.",
		},
	}
}
