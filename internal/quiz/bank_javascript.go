package quiz

// javascriptQuestions is the JavaScript assessment pool.
var javascriptQuestions = []Question{
	{
		ID:            "js-1",
		Prompt:        "What will this code output?",
		Type:          TypeMultipleChoice,
		Options:       []string{"undefined", "5", "ReferenceError", "null"},
		CorrectAnswer: 0,
		Explanation:   "Due to hoisting, `var x` is declared but not initialized when the console.log runs, so it outputs `undefined`.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "console.log(x);\nvar x = 5;",
	},
	{
		ID:            "js-2",
		Prompt:        "What is the correct way to create a function in JavaScript?",
		Type:          TypeMultipleChoice,
		Options:       []string{"function myFunc() {}", "def myFunc() {}", "func myFunc() {}", "create function myFunc() {}"},
		CorrectAnswer: 0,
		Explanation:   "In JavaScript, functions are declared using the `function` keyword followed by the function name and parentheses.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "function myFunc() {\n  return \"Hello World\";\n}",
	},
	{
		ID:            "js-3",
		Prompt:        "What will this code output?",
		Type:          TypeMultipleChoice,
		Options:       []string{"null", "undefined", "object", "boolean"},
		CorrectAnswer: 2,
		Explanation:   "This is a well-known quirk in JavaScript. `typeof null` returns \"object\", which is considered a bug in the language but has been kept for backward compatibility.",
		Difficulty:    DifficultyMedium,
		Topic:         "javascript",
		CodeSnippet:   "console.log(typeof null);",
	},
	{
		ID:            "js-4",
		Prompt:        "What will this arrow function return?",
		Type:          TypeMultipleChoice,
		Options:       []string{"undefined", "42", "function", "Error"},
		CorrectAnswer: 1,
		Explanation:   "Arrow functions with a single expression automatically return that expression without needing the `return` keyword.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "const add = (a, b) => a + b;\nconsole.log(add(20, 22));",
	},
	{
		ID:            "js-5",
		Prompt:        "What will this code output?",
		Type:          TypeMultipleChoice,
		Options:       []string{"[]", "[1, 2, 3]", "[0]", "undefined"},
		CorrectAnswer: 0,
		Explanation:   "Setting the length property of an array to 0 effectively empties the array. This is a quick way to clear an array in JavaScript.",
		Difficulty:    DifficultyMedium,
		Topic:         "javascript",
		CodeSnippet:   "let arr = [1, 2, 3];\narr.length = 0;\nconsole.log(arr);",
	},
	{
		ID:     "js-6",
		Prompt: "What is the difference between `==` and `===` in JavaScript?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"No difference",
			"== checks value only, === checks value and type",
			"== checks type only, === checks value only",
			"=== is used for assignment",
		},
		CorrectAnswer: 1,
		Explanation:   "== performs type coercion and compares values, while === compares both value and type without coercion. === is generally preferred for precise comparisons.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
	},
	{
		ID:            "js-7",
		Prompt:        "What will this code output?",
		Type:          TypeMultipleChoice,
		Options:       []string{"true", "false", "undefined", "Error"},
		CorrectAnswer: 1,
		Explanation:   "Due to floating-point precision issues, 0.1 + 0.2 equals 0.30000000000000004, not exactly 0.3. This is a common gotcha in JavaScript.",
		Difficulty:    DifficultyHard,
		Topic:         "javascript",
		CodeSnippet:   "console.log(0.1 + 0.2 === 0.3);",
	},
	{
		ID:            "js-8",
		Prompt:        "What does this async function return?",
		Type:          TypeMultipleChoice,
		Options:       []string{"A string", "A Promise", "undefined", "An object"},
		CorrectAnswer: 1,
		Explanation:   "The `async` keyword makes a function return a Promise. Even if you return a simple value, it gets wrapped in a resolved Promise.",
		Difficulty:    DifficultyMedium,
		Topic:         "javascript",
		CodeSnippet:   "async function getData() {\n  return \"Hello\";\n}",
	},
	{
		ID:            "js-9",
		Prompt:        "What will this code output?",
		Type:          TypeMultipleChoice,
		Options:       []string{"0 1 2", "3 3 3", "0 0 0", "Error"},
		CorrectAnswer: 1,
		Explanation:   "Due to closure and `var` hoisting, all functions capture the same variable `i` which has value 3 after the loop completes.",
		Difficulty:    DifficultyMedium,
		Topic:         "javascript",
		CodeSnippet:   "for (var i = 0; i < 3; i++) {\n  setTimeout(() => console.log(i), 100);\n}",
	},
	{
		ID:            "js-10",
		Prompt:        "What is the result of this comparison?",
		Type:          TypeMultipleChoice,
		Options:       []string{"true", "false", "undefined", "Error"},
		CorrectAnswer: 0,
		Explanation:   "JavaScript performs type coercion. The string '5' is converted to number 5, making the comparison true.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "console.log(5 == '5');",
	},
	{
		ID:     "js-11",
		Prompt: "What will this destructuring assignment do?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"Create variables a=1, b=2",
			"Create variables a=1, b=2, c=3",
			"Error",
			"Create a=[1,2,3]",
		},
		CorrectAnswer: 0,
		Explanation:   "Array destructuring assigns the first two elements to variables a and b. The rest parameter isn't used here.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "const [a, b] = [1, 2, 3];\nconsole.log(a, b);",
	},
	{
		ID:     "js-12",
		Prompt: "What does the spread operator do here?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"Copies the array",
			"Creates a new array with all elements",
			"Merges arrays",
			"All of the above",
		},
		CorrectAnswer: 3,
		Explanation:   "The spread operator (...) expands array elements. Here it creates a new array containing all elements from both arrays.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "const arr1 = [1, 2];\nconst arr2 = [3, 4];\nconst combined = [...arr1, ...arr2];",
	},
	{
		ID:            "js-13",
		Prompt:        "What will this arrow function return?",
		Type:          TypeMultipleChoice,
		Options:       []string{"undefined", "42", "{ value: 42 }", "Error"},
		CorrectAnswer: 1,
		Explanation:   "Arrow functions with a single expression automatically return that expression without needing the return keyword.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "const getValue = () => 42;\nconsole.log(getValue());",
	},
	{
		ID:            "js-14",
		Prompt:        "What happens with this object method?",
		Type:          TypeMultipleChoice,
		Options:       []string{"Prints 'Alice'", "Prints undefined", "Error", "Prints 'Bob'"},
		CorrectAnswer: 1,
		Explanation:   "When a method is assigned to a variable and called, `this` loses its context and becomes undefined (in strict mode).",
		Difficulty:    DifficultyMedium,
		Topic:         "javascript",
		CodeSnippet:   "const person = {\n  name: 'Alice',\n  getName() { return this.name; }\n};\nconst fn = person.getName;\nconsole.log(fn());",
	},
	{
		ID:            "js-15",
		Prompt:        "What will this Promise chain output?",
		Type:          TypeMultipleChoice,
		Options:       []string{"10", "20", "30", "Error"},
		CorrectAnswer: 2,
		Explanation:   "Promise chains pass the resolved value to the next .then(). 10 + 10 = 20, then 20 + 10 = 30.",
		Difficulty:    DifficultyMedium,
		Topic:         "javascript",
		CodeSnippet:   "Promise.resolve(10)\n  .then(x => x + 10)\n  .then(x => x + 10)\n  .then(console.log);",
	},
	{
		ID:            "js-16",
		Prompt:        "What does this array method return?",
		Type:          TypeMultipleChoice,
		Options:       []string{"[2, 4, 6]", "[1, 2, 3]", "[false, true, false]", "6"},
		CorrectAnswer: 0,
		Explanation:   "The map() method creates a new array by calling the provided function on every element and returning the results.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "const numbers = [1, 2, 3];\nconst doubled = numbers.map(x => x * 2);",
	},
	{
		ID:            "js-17",
		Prompt:        "What will this filter operation return?",
		Type:          TypeMultipleChoice,
		Options:       []string{"[2, 4]", "[1, 3]", "[true, false, true, false]", "4"},
		CorrectAnswer: 0,
		Explanation:   "The filter() method creates a new array with elements that pass the test. Even numbers (2, 4) pass the test.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "const numbers = [1, 2, 3, 4];\nconst evens = numbers.filter(x => x % 2 === 0);",
	},
	{
		ID:            "js-18",
		Prompt:        "What is the result of this reduce operation?",
		Type:          TypeMultipleChoice,
		Options:       []string{"10", "6", "24", "Error"},
		CorrectAnswer: 0,
		Explanation:   "Reduce accumulates values. Starting with 0: 0+1=1, 1+2=3, 3+3=6, 6+4=10.",
		Difficulty:    DifficultyMedium,
		Topic:         "javascript",
		CodeSnippet:   "const numbers = [1, 2, 3, 4];\nconst sum = numbers.reduce((acc, curr) => acc + curr, 0);",
	},
	{
		ID:            "js-19",
		Prompt:        "What will this template literal output?",
		Type:          TypeMultipleChoice,
		Options:       []string{"Hello Alice!", "Hello ${name}!", "Hello undefined!", "Error"},
		CorrectAnswer: 0,
		Explanation:   "Template literals use ${} syntax to embed expressions. The variable name is interpolated into the string.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "const name = 'Alice';\nconst greeting = `Hello ${name}!`;\nconsole.log(greeting);",
	},
	{
		ID:     "js-20",
		Prompt: "What does this class constructor do?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"Creates a person with name Alice",
			"Error",
			"Creates empty object",
			"Returns undefined",
		},
		CorrectAnswer: 0,
		Explanation:   "The constructor method is called when creating a new instance with 'new'. It initializes the object's properties.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "class Person {\n  constructor(name) {\n    this.name = name;\n  }\n}\nconst p = new Person('Alice');",
	},
	{
		ID:            "js-21",
		Prompt:        "What will this event loop example output?",
		Type:          TypeMultipleChoice,
		Options:       []string{"1 2 3", "1 3 2", "3 2 1", "2 1 3"},
		CorrectAnswer: 1,
		Explanation:   "Synchronous code runs first (1, 3), then setTimeout callback runs after the current execution (2).",
		Difficulty:    DifficultyHard,
		Topic:         "javascript",
		CodeSnippet:   "console.log(1);\nsetTimeout(() => console.log(2), 0);\nconsole.log(3);",
	},
	{
		ID:            "js-22",
		Prompt:        "What happens with this object property access?",
		Type:          TypeMultipleChoice,
		Options:       []string{"Alice", "undefined", "Error", "null"},
		CorrectAnswer: 1,
		Explanation:   "Accessing a non-existent property returns undefined. JavaScript doesn't throw an error for missing properties.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "const person = { name: 'Alice' };\nconsole.log(person.age);",
	},
	{
		ID:            "js-23",
		Prompt:        "What will this typeof check return?",
		Type:          TypeMultipleChoice,
		Options:       []string{"'object'", "'array'", "'undefined'", "'null'"},
		CorrectAnswer: 0,
		Explanation:   "In JavaScript, typeof null returns 'object'. This is a known quirk/bug in the language.",
		Difficulty:    DifficultyMedium,
		Topic:         "javascript",
		CodeSnippet:   "console.log(typeof null);",
	},
	{
		ID:     "js-24",
		Prompt: "What does this function declaration create?",
		Type:   TypeMultipleChoice,
		Options: []string{
			"A function that returns 5",
			"A function that returns undefined",
			"Error",
			"A variable",
		},
		CorrectAnswer: 0,
		Explanation:   "Function declarations are hoisted and can be called before they're defined. This function returns 5.",
		Difficulty:    DifficultyEasy,
		Topic:         "javascript",
		CodeSnippet:   "function getValue() {\n  return 5;\n}\nconsole.log(getValue());",
	},
}
