package i18n

type text struct {
	ja string
	en string
}

// Message keys. Keys are looked up as-is; they must not contain format verbs.
const (
	AppTitle = "app.title"

	NicknameLabel    = "nickname.label"
	NicknameSubmit   = "nickname.submit"
	NicknameRequired = "nickname.required"
	NicknameSwitch   = "nickname.switch"

	GoalsHeader = "goals.header"
	GoalsIntro  = "goals.intro"
	GoalsSave   = "goals.save"
	GoalsSaved  = "goals.saved"

	EntryHeader   = "entry.header"
	EntryPrompt   = "entry.prompt"
	EntryExample  = "entry.example"
	EntrySubmit   = "entry.submit"
	EntrySaved    = "entry.saved"
	EntryRequired = "entry.required"

	ReplyHeader      = "reply.header"
	ReplyShowRecords = "reply.show_records"
	ReplyFailed      = "reply.failed"

	HistoryGoals  = "history.goals"
	HistoryHeader = "history.header"
	HistoryEmpty  = "history.empty"
	HistoryUnset  = "history.unset"
	HistoryHide   = "history.hide"

	SessionExpired = "session.expired"

	ToastSuccess = "toast.success"
	ToastError   = "toast.error"
	ErrorGeneric = "error.generic"
	NotFound     = "error.not_found"
)

// GoalTitle, GoalExample and GoalShort return the keys for a goal area
// (model.AreaBodyMind etc.).
func GoalTitle(area string) string   { return "goals." + area + ".title" }
func GoalExample(area string) string { return "goals." + area + ".example" }
func GoalShort(area string) string   { return "goals." + area + ".short" }

var messages = map[string]text{
	AppTitle: {"🌟 ポジティブ習慣アプリ", "🌟 Positive Habits"},

	NicknameLabel:    {"あなたに割り当てられたIDを入力してください", "Enter the ID assigned to you"},
	NicknameSubmit:   {"はじめる", "Start"},
	NicknameRequired: {"IDを入力してください", "Please enter your ID"},
	NicknameSwitch:   {"IDを変更する", "Use a different ID"},

	GoalsHeader: {"🎯 あなたの将来の最も理想的な姿について記入しましょう", "🎯 Describe your ideal future self"},
	GoalsIntro: {
		"なるべく具体的に記入しましょう✨ いくつでも構いません😊 いつでも変更してOKです👌 変更したら忘れずに保存ボタンを押しましょう！",
		"Be as specific as you can ✨ Write as many as you like 😊 You can change them any time 👌 Remember to press save after editing!",
	},
	GoalsSave:  {"目標を保存する", "Save goals"},
	GoalsSaved: {"✅ 目標を保存しました！", "✅ Goals saved!"},

	GoalTitle("body_mind"): {"1. 身体・心理面の理想", "1. Body and mind"},
	GoalExample("body_mind"): {
		"例：週に1回は運動し、健康的な生活習慣を続けている。柔軟な考えを持ち、人に優しく接することができる。",
		"e.g. I exercise once a week and keep healthy habits. I think flexibly and treat people kindly.",
	},
	GoalShort("body_mind"): {"身体・心理面", "Body and mind"},

	GoalTitle("career"): {"2. 学業・仕事の理想", "2. Study and work"},
	GoalExample("career"): {
		"例：統計学をマスターし、どんな解析でも自信を持ってできるようになっている。丁寧で正確に仕事をこなし、周囲から頼られる先輩である。",
		"e.g. I have mastered statistics and can run any analysis with confidence. I work carefully and colleagues rely on me.",
	},
	GoalShort("career"): {"学業・仕事", "Study and work"},

	GoalTitle("relationships"): {"3. 人間関係の理想", "3. Relationships"},
	GoalExample("relationships"): {
		"例：信頼できるパートナーと暮らし、両親ともたまに会って良好な関係を築いている。何らかのコミュニティに参加し、常に新しい人との出会いがある。",
		"e.g. I live with a partner I trust and see my parents now and then. I belong to a community and keep meeting new people.",
	},
	GoalShort("relationships"): {"人間関係", "Relationships"},

	GoalTitle("others"): {"4. その他の理想", "4. Everything else"},
	GoalExample("others"): {
		"例：趣味のバンド活動を続け、たまにライブを開催している。料理が上手で、家族に美味しいご飯を作っている。",
		"e.g. I still play in my band and give the occasional gig. I cook well and make tasty meals for my family.",
	},
	GoalShort("others"): {"その他", "Everything else"},

	EntryHeader: {"📖 今日のポジティブな出来事", "📖 Today's good things"},
	EntryPrompt: {
		"今日嬉しかったこと、できたこと、達成したことなどを自由に書いてください✨",
		"Write freely about what made you happy, what you managed or achieved today ✨",
	},
	EntryExample: {
		"例：朝余裕をもって出勤でき、清々しい気持ちがした。友達に偶然出会い、ご飯に行く約束をした。",
		"e.g. I left for work with time to spare and felt refreshed. I bumped into a friend and we made plans for dinner.",
	},
	EntrySubmit:   {"記録する", "Record"},
	EntrySaved:    {"✅ 記録を保存しました！", "✅ Entry saved!"},
	EntryRequired: {"出来事を入力してください", "Please write something first"},

	ReplyHeader:      {"💬 GPTの応答：", "💬 Reply:"},
	ReplyShowRecords: {"📄 記録を見る", "📄 View records"},
	ReplyFailed: {
		"応答の生成に失敗しました。記録は保存されています。",
		"The reply could not be generated. Your entry has been saved.",
	},

	HistoryGoals:  {"📌 現在の目標", "📌 Current goals"},
	HistoryHeader: {"📚 過去の記録（最新5件）", "📚 Past entries (latest 5)"},
	HistoryEmpty:  {"まだ記録がありません。", "No entries yet."},
	HistoryUnset:  {"（未入力）", "(not set)"},
	HistoryHide:   {"閉じる", "Close"},

	SessionExpired: {
		"ページの有効期限が切れました。ページを再読み込みしてもう一度お試しください。",
		"This page has expired. Please reload it and try again.",
	},

	ToastSuccess: {"成功", "Success"},
	ToastError:   {"エラー", "Error"},
	ErrorGeneric: {
		"エラーが発生しました。時間をおいて再度お試しください。",
		"Something went wrong. Please try again later.",
	},
	NotFound: {"ページが見つかりません", "Page not found"},
}
