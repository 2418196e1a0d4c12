package quiz

// pythonQuestions is the Python assessment pool.
var pythonQuestions = []Question{
	{
		ID:            "py-1",
		Prompt:        "What will this Python code output?",
		Type:          TypeMultipleChoice,
		Options:       []string{"Hello", "Error", "None", "hello"},
		CorrectAnswer: 0,
		Explanation:   "Python functions are defined with the `def` keyword. This function returns the string 'Hello' when called.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "def greet():\n    return \"Hello\"\n\nprint(greet())",
	},
	{
		ID:     "py-2",
		Prompt: "What is the difference between a list and a tuple in Python?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"Lists are mutable, tuples are immutable",
			"Lists are immutable, tuples are mutable",
			"There is no difference",
			"Lists can only store numbers, tuples can store any data type",
		},
		CorrectAnswer: 0,
		Explanation:   "Lists are mutable (can be changed after creation) while tuples are immutable (cannot be changed after creation). This makes tuples useful for data that should not change.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "my_list = [1, 2, 3]  # Mutable\nmy_tuple = (1, 2, 3)  # Immutable",
	},
	{
		ID:            "py-3",
		Prompt:        "What will this code output?",
		Type:          TypeMultipleChoice,
		Options:       []string{"[1, 2, 3, 4]", "[1, 2, 3]", "Error", "4"},
		CorrectAnswer: 0,
		Explanation:   "The `append()` method adds an element to the end of a list. After appending 4, the list becomes [1, 2, 3, 4].",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "my_list = [1, 2, 3]\nmy_list.append(4)\nprint(my_list)",
	},
	{
		ID:     "py-4",
		Prompt: "What does `*args` allow you to do in Python?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"Pass a variable number of arguments to a function",
			"Pass keyword arguments to a function",
			"Make arguments optional",
			"Pass arguments by reference",
		},
		CorrectAnswer: 0,
		Explanation:   "`*args` allows a function to accept any number of positional arguments. The arguments are collected into a tuple.",
		Difficulty:    DifficultyMedium,
		Topic:         "python",
		CodeSnippet:   "def my_func(*args):\n    return sum(args)\n\nprint(my_func(1, 2, 3, 4))",
	},
	{
		ID:            "py-5",
		Prompt:        "What will this code output?",
		Type:          TypeMultipleChoice,
		Options:       []string{"True", "False", "Error", "None"},
		CorrectAnswer: 1,
		Explanation:   "Strings in Python are immutable. Once created, they cannot be changed. You cannot modify individual characters of a string.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "text = \"Hello\"\n# Can we change text[0]?\n# text[0] = \"h\"  # This would cause an error",
	},
	{
		ID:     "py-6",
		Prompt: "What is a Python decorator?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"A way to add metadata to functions",
			"A function that modifies or extends another function",
			"A way to create private methods",
			"A type of comment",
		},
		CorrectAnswer: 1,
		Explanation:   "A decorator is a function that takes another function as an argument and extends or modifies its behavior without explicitly modifying the function itself.",
		Difficulty:    DifficultyMedium,
		Topic:         "python",
		CodeSnippet:   "def my_decorator(func):\n    def wrapper():\n        print('Before')\n        func()\n        print('After')\n    return wrapper",
	},
	{
		ID:            "py-7",
		Prompt:        "What will this list comprehension create?",
		Type:          TypeMultipleChoice,
		Options:       []string{"[0, 1, 4, 9, 16]", "[1, 2, 3, 4, 5]", "[0, 1, 2, 3, 4]", "Error"},
		CorrectAnswer: 0,
		Explanation:   "This list comprehension creates a list of squares. For each number from 0 to 4, it calculates x**2 (x squared).",
		Difficulty:    DifficultyMedium,
		Topic:         "python",
		CodeSnippet:   "squares = [x**2 for x in range(5)]\nprint(squares)",
	},
	{
		ID:            "py-8",
		Prompt:        "What is the correct way to handle exceptions in Python?",
		Type:          TypeMultipleChoice,
		Options:       []string{"try/catch", "try/except", "catch/finally", "handle/error"},
		CorrectAnswer: 1,
		Explanation:   "Python uses `try/except` blocks to handle exceptions, unlike some other languages that use `try/catch`.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "try:\n    result = 10 / 0\nexcept ZeroDivisionError:\n    print('Cannot divide by zero!')",
	},
	{
		ID:            "py-9",
		Prompt:        "What will this list comprehension create?",
		Type:          TypeMultipleChoice,
		Options:       []string{"[0, 2, 4, 6, 8]", "[1, 3, 5, 7, 9]", "[0, 1, 2, 3, 4]", "Error"},
		CorrectAnswer: 0,
		Explanation:   "List comprehension creates a new list. This generates even numbers from 0 to 8 (x*2 for x in range(5)).",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "evens = [x * 2 for x in range(5)]\nprint(evens)",
	},
	{
		ID:     "py-10",
		Prompt: "What does this dictionary method return?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"['name', 'age']",
			"dict_keys(['name', 'age'])",
			"('name', 'age')",
			"Error",
		},
		CorrectAnswer: 1,
		Explanation:   "The keys() method returns a dict_keys object containing all the keys from the dictionary.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "person = {'name': 'Alice', 'age': 30}\nprint(person.keys())",
	},
	{
		ID:     "py-11",
		Prompt: "What will this string method output?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"['Hello', 'World']",
			"['Hello', ' ', 'World']",
			"Hello World",
			"Error",
		},
		CorrectAnswer: 0,
		Explanation:   "The split() method divides a string into a list. By default, it splits on whitespace.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "text = 'Hello World'\nwords = text.split()\nprint(words)",
	},
	{
		ID:     "py-12",
		Prompt: "What does this lambda function do?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"Squares each number",
			"Adds 1 to each number",
			"Filters even numbers",
			"Multiplies by 2",
		},
		CorrectAnswer: 0,
		Explanation:   "Lambda functions are anonymous functions. This one takes x and returns x squared (x**2).",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "numbers = [1, 2, 3, 4]\nsquared = list(map(lambda x: x**2, numbers))",
	},
	{
		ID:            "py-13",
		Prompt:        "What will this range function produce?",
		Type:          TypeMultipleChoice,
		Options:       []string{"[1, 2, 3, 4, 5]", "[1, 3, 5]", "[0, 2, 4]", "range(1, 6, 2)"},
		CorrectAnswer: 1,
		Explanation:   "range(start, stop, step) generates numbers from 1 to 5 (exclusive) with step 2: 1, 3, 5.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "numbers = list(range(1, 6, 2))\nprint(numbers)",
	},
	{
		ID:            "py-14",
		Prompt:        "What does this set operation return?",
		Type:          TypeMultipleChoice,
		Options:       []string{"{1, 2}", "{3, 4}", "{1, 2, 3, 4}", "{2, 3}"},
		CorrectAnswer: 3,
		Explanation:   "The intersection (&) operator returns elements that are common to both sets: 2 and 3.",
		Difficulty:    DifficultyMedium,
		Topic:         "python",
		CodeSnippet:   "set1 = {1, 2, 3}\nset2 = {2, 3, 4}\nresult = set1 & set2",
	},
	{
		ID:            "py-15",
		Prompt:        "What will this tuple unpacking do?",
		Type:          TypeMultipleChoice,
		Options:       []string{"a=1, b=2, c=3", "a=(1,2,3)", "Error", "a=1, b=(2,3)"},
		CorrectAnswer: 0,
		Explanation:   "Tuple unpacking assigns each element of the tuple to the corresponding variable.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "data = (1, 2, 3)\na, b, c = data\nprint(a, b, c)",
	},
	{
		ID:     "py-16",
		Prompt: "What does this enumerate function return?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"[(0, 'a'), (1, 'b'), (2, 'c')]",
			"[0, 1, 2]",
			"['a', 'b', 'c']",
			"Error",
		},
		CorrectAnswer: 0,
		Explanation:   "enumerate() returns an iterator of tuples containing index and value pairs.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "letters = ['a', 'b', 'c']\nresult = list(enumerate(letters))",
	},
	{
		ID:     "py-17",
		Prompt: "What will this zip function create?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"[(1, 'a'), (2, 'b'), (3, 'c')]",
			"[1, 2, 3, 'a', 'b', 'c']",
			"Error",
			"[[1, 'a'], [2, 'b'], [3, 'c']]",
		},
		CorrectAnswer: 0,
		Explanation:   "zip() combines elements from multiple iterables into tuples, pairing them by position.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "numbers = [1, 2, 3]\nletters = ['a', 'b', 'c']\nresult = list(zip(numbers, letters))",
	},
	{
		ID:     "py-18",
		Prompt: "What does this class inheritance do?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"Creates a dog that can bark",
			"Error",
			"Creates empty class",
			"Overrides Animal",
		},
		CorrectAnswer: 0,
		Explanation:   "Class inheritance allows Dog to inherit methods from Animal. Dog gets the speak method and can be instantiated.",
		Difficulty:    DifficultyMedium,
		Topic:         "python",
		CodeSnippet:   "class Animal:\n    def speak(self):\n        return 'Sound'\n\nclass Dog(Animal):\n    def speak(self):\n        return 'Woof'\n\ndog = Dog()",
	},
	{
		ID:     "py-19",
		Prompt: "What will this file operation do?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"Reads entire file",
			"Reads first line",
			"Writes to file",
			"Error",
		},
		CorrectAnswer: 1,
		Explanation:   "The readline() method reads a single line from the file. It's different from read() which reads the entire file.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "with open('file.txt', 'r') as f:\n    line = f.readline()\n    print(line)",
	},
	{
		ID:            "py-20",
		Prompt:        "What does this generator function yield?",
		Type:          TypeMultipleChoice,
		Options:       []string{"[0, 1, 2]", "A generator object", "0, then 1, then 2", "Error"},
		CorrectAnswer: 1,
		Explanation:   "Functions with 'yield' return generator objects. The values are produced lazily when iterated over.",
		Difficulty:    DifficultyMedium,
		Topic:         "python",
		CodeSnippet:   "def count_up_to(n):\n    i = 0\n    while i < n:\n        yield i\n        i += 1\n\ngen = count_up_to(3)",
	},
	{
		ID:     "py-21",
		Prompt: "What will this decorator do?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"Prints function name before calling",
			"Returns None",
			"Error",
			"Doubles the result",
		},
		CorrectAnswer: 0,
		Explanation:   "Decorators modify function behavior. This decorator prints the function name before executing the original function.",
		Difficulty:    DifficultyHard,
		Topic:         "python",
		CodeSnippet:   "def my_decorator(func):\n    def wrapper():\n        print(f'Calling {func.__name__}')\n        return func()\n    return wrapper\n\n@my_decorator\ndef greet():\n    return 'Hello'",
	},
	{
		ID:            "py-22",
		Prompt:        "What does this list slicing return?",
		Type:          TypeMultipleChoice,
		Options:       []string{"[3, 2, 1]", "[1, 2, 3]", "[2, 3]", "Error"},
		CorrectAnswer: 0,
		Explanation:   "List slicing with [::-1] reverses the list. It starts from the end and goes to the beginning.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "numbers = [1, 2, 3]\nreversed_nums = numbers[::-1]\nprint(reversed_nums)",
	},
	{
		ID:            "py-23",
		Prompt:        "What will this boolean operation return?",
		Type:          TypeMultipleChoice,
		Options:       []string{"True", "False", "None", "Error"},
		CorrectAnswer: 1,
		Explanation:   "In Python, empty containers (like empty lists) are considered False in boolean context.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "empty_list = []\nresult = bool(empty_list)\nprint(result)",
	},
	{
		ID:     "py-24",
		Prompt: "What does this string formatting do?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"Hello Alice, you are 25",
			"Hello {name}, you are {age}",
			"Error",
			"Hello Alice you are 25",
		},
		CorrectAnswer: 0,
		Explanation:   "f-strings (formatted string literals) allow embedding expressions inside strings using {} syntax.",
		Difficulty:    DifficultyEasy,
		Topic:         "python",
		CodeSnippet:   "name = 'Alice'\nage = 25\nmessage = f'Hello {name}, you are {age}'\nprint(message)",
	},
}
