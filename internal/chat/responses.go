package chat

// Topic names a keyword group of the selector
type Topic string

const (
	TopicSaving    Topic = "saving"
	TopicInterest  Topic = "interest"
	TopicInvesting Topic = "investing"
	TopicBudget    Topic = "budget"
	TopicEmergency Topic = "emergency"
	TopicDebt      Topic = "debt"
	TopicBanking   Topic = "banking"
	TopicGoals     Topic = "goals"
	TopicEarning   Topic = "earning"
)

type rule struct {
	topic    Topic
	keywords []string
	reply    string
}

// rules are checked in order; the first group with a matching keyword wins.
var rules = []rule{
	{
		topic:    TopicSaving,
		keywords: []string{"save", "saving"},
		reply: "Great question about saving! 💰 Here are some tips:\n\n" +
			"• Start small - even ₹10 per week adds up!\n" +
			"• Set a specific goal (like a new game or toy)\n" +
			"• Use the 50-30-20 rule: spend 50% on needs, 30% on wants, save 20%\n" +
			"• Keep your savings in a separate place so you're not tempted to spend it\n\n" +
			"What specific savings goal do you have in mind?",
	},
	{
		topic:    TopicInterest,
		keywords: []string{"interest", "fd", "fixed deposit"},
		reply: "Interest is like a reward banks give you for keeping money with them! 🏦\n\n" +
			"Think of it like this:\n" +
			"• You lend ₹100 to the bank\n" +
			"• The bank pays you extra money (interest) for using your money\n" +
			"• After 1 year, you might get ₹107 back (7% interest)\n" +
			"• The longer you keep money in the bank, the more interest you earn!\n\n" +
			"Fixed Deposits (FD) are a safe way to earn interest. Want to know more about how they work?",
	},
	{
		topic:    TopicInvesting,
		keywords: []string{"invest", "stock", "share"},
		reply: "Investing is like planting seeds to grow money trees! 🌱📈\n\n" +
			"• Stocks are like owning a tiny piece of a company\n" +
			"• When the company does well, your stock value goes up\n" +
			"• When it doesn't do well, the value can go down\n" +
			"• It's important to learn before you invest real money\n\n" +
			"Remember: Never invest money you can't afford to lose. Always learn first!",
	},
	{
		topic:    TopicBudget,
		keywords: []string{"budget", "plan"},
		reply: "Budgeting is like making a plan for your money! 📝💡\n\n" +
			"Here's a simple way to start:\n" +
			"1. Write down how much money you get (pocket money, gifts)\n" +
			"2. List what you need to spend on (lunch, transport)\n" +
			"3. List what you want to buy (games, snacks)\n" +
			"4. Decide how much to save\n" +
			"5. Track where your money actually goes\n\n" +
			"Try the 50-30-20 rule: 50% needs, 30% wants, 20% savings!",
	},
	{
		topic:    TopicEmergency,
		keywords: []string{"emergency"},
		reply: "An emergency fund is like having a superhero cape for your money! 🦸💰\n\n" +
			"• It's money saved for unexpected things (broken phone, urgent needs)\n" +
			"• Try to save at least ₹200-500 for emergencies\n" +
			"• Keep it separate from your regular savings\n" +
			"• Only use it for real emergencies, not for things you want\n\n" +
			"Having an emergency fund gives you peace of mind!",
	},
	{
		topic:    TopicDebt,
		keywords: []string{"debt", "loan", "borrow"},
		reply: "Borrowing money is like making a promise to pay back later! 🤝\n\n" +
			"• Only borrow what you really need\n" +
			"• Always pay back on time to build trust\n" +
			"• Borrowing costs extra money (interest)\n" +
			"• It's better to save up and buy things with your own money\n" +
			"• If you must borrow, have a clear plan to pay back\n\n" +
			"Remember: Good debt helps you (like education), bad debt hurts you (like expensive toys you don't need)!",
	},
	{
		topic:    TopicBanking,
		keywords: []string{"bank", "account"},
		reply: "Banks are like safe houses for your money! 🏦🔒\n\n" +
			"• They keep your money safe\n" +
			"• They pay you interest for keeping money there\n" +
			"• You can access your money when needed\n" +
			"• They help you track your spending\n" +
			"• Some accounts are special for kids and teens\n\n" +
			"When you're older, having a good relationship with a bank will help you get loans for important things like education!",
	},
	{
		topic:    TopicGoals,
		keywords: []string{"goal", "target"},
		reply: "Setting money goals is like planning an awesome adventure! 🎯✨\n\n" +
			"• Make your goals specific (not just 'save money', but 'save ₹500 for a new game')\n" +
			"• Set a deadline (by your birthday, in 3 months)\n" +
			"• Break big goals into smaller steps\n" +
			"• Track your progress and celebrate wins\n" +
			"• Write your goals down where you can see them\n\n" +
			"What's something you're saving for? I can help you make a plan!",
	},
	{
		topic:    TopicEarning,
		keywords: []string{"job", "earn", "work"},
		reply: "Learning to earn money is a valuable skill! 💼🌟\n\n" +
			"• Do extra chores for pocket money\n" +
			"• Help neighbors with small tasks\n" +
			"• Sell things you make (art, crafts)\n" +
			"• Offer services (dog walking, tutoring younger kids)\n" +
			"• Always ask your parents before taking on any work\n\n" +
			"Remember: The money you work for feels more valuable than money you just receive!",
	},
}

// DefaultReplies are used when no keyword group matches
var DefaultReplies = []string{
	"That's an interesting question! 🤔 Money management is all about making smart choices. Can you tell me more about what specifically you'd like to know?",
	"I'd love to help you learn about that! 📚 Financial literacy is super important. What aspect interests you most?",
	"Great topic! 💡 Understanding money helps you make better decisions. What would you like to explore about this?",
	"I'm here to help you become money-smart! 🎓 Can you be more specific about what you'd like to learn?",
}

// Greeting opens every transcript
const Greeting = "Hi there! 👋 I'm MoneyBot, your financial learning assistant! I can help you understand money, savings, investments, and answer any questions you have about managing your finances. What would you like to learn about today?"

// Suggestions are offered as one-tap questions
var Suggestions = []string{
	"How do I start saving money?",
	"What is compound interest?",
	"How do stocks work?",
	"What's a budget?",
	"Why should I save money?",
}
